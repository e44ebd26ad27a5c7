package customer

import (
	"errors"
	"fmt"
)

// MaxPhoneAttempts caps phone draws per record before giving up.
const MaxPhoneAttempts = 1000

var (
	// ErrInvalidCount is returned for a negative batch size.
	ErrInvalidCount = errors.New("batch size must not be negative")

	// ErrPhoneSpaceExhausted is returned when no unused phone turns up
	// within MaxPhoneAttempts draws.
	ErrPhoneSpaceExhausted = errors.New("phone number space exhausted")
)

// Batch generates n records with pairwise distinct phone numbers.
func (g *Generator) Batch(n int) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("batch of %d: %w", n, ErrInvalidCount)
	}

	records := make([]Record, 0, n)
	used := make(map[string]struct{}, n)

	for i := range n {
		phone, err := g.uniquePhone(used)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		used[phone] = struct{}{}
		records = append(records, g.Record(phone))
	}

	return records, nil
}

// uniquePhone rejection-samples a phone not already in used.
func (g *Generator) uniquePhone(used map[string]struct{}) (string, error) {
	for range MaxPhoneAttempts {
		p := g.Phone()
		if _, taken := used[p]; !taken {
			return p, nil
		}
	}
	return "", fmt.Errorf("%d attempts: %w", MaxPhoneAttempts, ErrPhoneSpaceExhausted)
}
