// Package responder answers free-text questions about the site owner by
// matching keyword groups against the static profile.
package responder

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/honekiti/portfolio/internal/profile"
)

// Recorder is told which rule answered each question. It must not block.
type Recorder interface {
	RecordHit(rule string, matched bool)
}

// Responder is safe for concurrent use.
type Responder struct {
	profile  *profile.Profile
	rules    []KeywordRule
	recorder Recorder

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Responder)

// WithRand replaces the fallback source.
func WithRand(r *rand.Rand) Option {
	return func(rs *Responder) { rs.rnd = r }
}

func WithRecorder(rec Recorder) Option {
	return func(rs *Responder) { rs.recorder = rec }
}

// WithRules overrides the rule list. Order is kept as given.
func WithRules(rules []KeywordRule) Option {
	return func(rs *Responder) { rs.rules = rules }
}

// New builds a Responder over p using DefaultRules unless overridden.
func New(p *profile.Profile, opts ...Option) *Responder {
	r := &Responder{
		profile: p,
		rules:   DefaultRules(),
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond returns exactly one non-empty answer for any input, including "".
func (r *Responder) Respond(question string) string {
	_, answer, _ := r.Match(question)
	return answer
}

// Match is Respond that also reports which rule answered.
func (r *Responder) Match(question string) (rule, answer string, matched bool) {
	normalized := strings.ToLower(question)
	for _, kr := range r.rules {
		if !kr.Matches(normalized) {
			continue
		}
		answer = kr.Respond(r.profile)
		if answer == "" {
			// empty template: answer with a fallback instead
			break
		}
		r.record(kr.Name, true)
		return kr.Name, answer, true
	}
	r.record(RuleFallback, false)
	return RuleFallback, r.fallback(), false
}

// Rules returns a copy of the rule list in evaluation order.
func (r *Responder) Rules() []KeywordRule {
	out := make([]KeywordRule, len(r.rules))
	copy(out, r.rules)
	return out
}

func (r *Responder) fallback() string {
	r.mu.Lock()
	i := r.rnd.IntN(len(Fallbacks))
	r.mu.Unlock()
	return Fallbacks[i]
}

func (r *Responder) record(rule string, matched bool) {
	if r.recorder != nil {
		r.recorder.RecordHit(rule, matched)
	}
}
