// Package contact validates the contact form and plays out a simulated
// submission. Nothing the visitor types is sent or stored.
package contact

import (
	"context"
	"errors"
	"regexp"
	"time"
)

var (
	ErrMissingFields = errors.New("Please fill in all required fields.")
	ErrInvalidEmail  = errors.New("Please enter a valid email address.")
)

// SuccessMessage is shown once the simulated submission finishes.
const SuccessMessage = "Message sent successfully! I'll get back to you soon."

// DefaultDelay is how long the simulated submission takes.
const DefaultDelay = 2 * time.Second

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form mirrors the page's contact form fields.
type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// Validate requires name, email and message, and a plausible email shape.
func (f Form) Validate() error {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrMissingFields
	}
	if !ValidEmail(f.Email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Submitter fakes delivery with a fixed pause.
type Submitter struct {
	Delay time.Duration
}

func NewSubmitter(delay time.Duration) *Submitter {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Submitter{Delay: delay}
}

// Submit validates f as entered, waits out the delay, and returns the
// success text. Fields are not trimmed.
func (s *Submitter) Submit(ctx context.Context, f Form) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-t.C:
	}
	return SuccessMessage, nil
}
