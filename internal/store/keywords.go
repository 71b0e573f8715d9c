package store

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Keyword hit outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// KeywordHit is the running count of answers given by one rule.
type KeywordHit struct {
	Rule       string    `json:"rule"`
	Outcome    string    `json:"outcome"`
	Count      int64     `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// IncrementHit bumps the counter for rule/outcome.
func (s *Store) IncrementHit(ctx context.Context, rule, outcome string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keyword_hits (rule, outcome, count, last_seen_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(rule, outcome) DO UPDATE SET
			count = count + 1,
			last_seen_at = excluded.last_seen_at`,
		rule, outcome, s.now().Unix())
	if err != nil {
		return fmt.Errorf("recording keyword hit %s/%s: %w", rule, outcome, err)
	}
	return nil
}

// RecordHit counts a chat answer in the background; failures are logged.
func (s *Store) RecordHit(rule string, matched bool) {
	outcome := OutcomeFallback
	if matched {
		outcome = OutcomeMatched
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.IncrementHit(ctx, rule, outcome); err != nil {
			log.Printf("Error recording keyword hit %s/%s: %v", rule, outcome, err)
		}
	}()
}

// KeywordHits returns every counter, busiest first.
func (s *Store) KeywordHits(ctx context.Context) ([]KeywordHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT rule, outcome, count, last_seen_at
		FROM keyword_hits
		ORDER BY count DESC, rule ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying keyword hits: %w", err)
	}
	defer rows.Close()

	var out []KeywordHit
	for rows.Next() {
		var h KeywordHit
		var at int64
		if err := rows.Scan(&h.Rule, &h.Outcome, &h.Count, &at); err != nil {
			return nil, fmt.Errorf("scanning keyword hit: %w", err)
		}
		h.LastSeenAt = time.Unix(at, 0)
		out = append(out, h)
	}
	return out, rows.Err()
}
