package chat

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrEmptyMessage is returned for blank input; the chat box ignores it.
var ErrEmptyMessage = errors.New("message is empty")

const (
	DefaultMinDelay = 1000 * time.Millisecond
	DefaultMaxDelay = 2500 * time.Millisecond
)

// Responder is the keyword responder as the chat sees it.
type Responder interface {
	Respond(question string) string
}

// Controller pairs each question with the responder's answer after a
// simulated typing pause.
type Controller struct {
	responder Responder
	minDelay  time.Duration
	maxDelay  time.Duration
	wait      func(ctx context.Context, d time.Duration) error
	now       func() time.Time
	jitter    func(n int64) int64
}

type Option func(*Controller)

// WithDelayRange sets the typing pause bounds. Invalid ranges are ignored.
func WithDelayRange(lo, hi time.Duration) Option {
	return func(c *Controller) {
		if lo >= 0 && hi >= lo {
			c.minDelay, c.maxDelay = lo, hi
		}
	}
}

// WithWait replaces the sleep used for the typing pause.
func WithWait(wait func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Controller) { c.wait = wait }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(r Responder, opts ...Option) *Controller {
	c := &Controller{
		responder: r,
		minDelay:  DefaultMinDelay,
		maxDelay:  DefaultMaxDelay,
		wait:      sleep,
		now:       time.Now,
		jitter:    rand.Int64N,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TypingDelay picks a pause uniformly in [min, max].
func (c *Controller) TypingDelay() time.Duration {
	span := int64(c.maxDelay - c.minDelay)
	if span <= 0 {
		return c.minDelay
	}
	return c.minDelay + time.Duration(c.jitter(span+1))
}

// UserMessage stamps the visitor's question.
func (c *Controller) UserMessage(text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	return newMessage(SenderUser, text, c.now()), nil
}

// Reply waits the typing pause and then answers question. It only fails if
// ctx ends during the pause.
func (c *Controller) Reply(ctx context.Context, question string) (Message, error) {
	if err := c.wait(ctx, c.TypingDelay()); err != nil {
		return Message{}, err
	}
	return newMessage(SenderBot, c.responder.Respond(question), c.now()), nil
}

// Ask runs a full round trip.
func (c *Controller) Ask(ctx context.Context, text string) (Exchange, error) {
	user, err := c.UserMessage(text)
	if err != nil {
		return Exchange{}, err
	}
	bot, err := c.Reply(ctx, text)
	if err != nil {
		return Exchange{}, err
	}
	return Exchange{User: user, Bot: bot}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
