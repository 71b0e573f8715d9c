package store

import (
	"context"
	"fmt"
	"time"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64        `json:"total_visitors"`
	UniqueVisitors   int64        `json:"unique_visitors"`
	VisitorsToday    int64        `json:"visitors_today"`
	VisitorsThisWeek int64        `json:"visitors_this_week"`
	TotalQuestions   int64        `json:"total_questions"`
	FallbackAnswers  int64        `json:"fallback_answers"`
	KeywordHits      []KeywordHit `json:"keyword_hits"`
	RecentVisitors   []Visitor    `json:"recent_visitors"`
}

// FallbackRate is the share of questions no rule could answer.
func (st *Stats) FallbackRate() float64 {
	if st.TotalQuestions == 0 {
		return 0
	}
	return float64(st.FallbackAnswers) / float64(st.TotalQuestions)
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{}
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&st.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&st.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&st.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay.Unix()}},
		{&st.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{now.AddDate(0, 0, -7).Unix()}},
		{&st.TotalQuestions, `SELECT COALESCE(SUM(count), 0) FROM keyword_hits`, nil},
		{&st.FallbackAnswers, `SELECT COALESCE(SUM(count), 0) FROM keyword_hits WHERE outcome = ?`, []any{OutcomeFallback}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("loading stats: %w", err)
		}
	}

	var err error
	if st.KeywordHits, err = s.KeywordHits(ctx); err != nil {
		return nil, err
	}
	if st.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	return st, nil
}
