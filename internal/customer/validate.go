package customer

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
)

// ErrInvalidRecord is wrapped by every validation failure.
var ErrInvalidRecord = errors.New("invalid record")

var phoneRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// Validate checks a single record. now anchors the consent window.
func Validate(r Record, now time.Time) error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidRecord, field, fmt.Sprintf(format, args...)))
	}

	if r.Name == "" {
		bad("name", "empty")
	}

	if !phoneRe.MatchString(r.Phone) {
		bad("phoneE164", "%q is not a 10-digit mobile number", r.Phone)
	}
	if !phoneRe.MatchString(r.WhatsApp) {
		bad("whatsappE164", "%q is not a 10-digit mobile number", r.WhatsApp)
	}

	if r.Email != "" {
		if err := checkEmail(r.Email, r.Name); err != nil {
			bad("email", "%v", err)
		}
	}

	tags := r.TagList()
	if len(tags) < 1 || len(tags) > 2 {
		bad("tags", "want 1 or 2 tags, got %d", len(tags))
	}
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		if !slices.Contains(Tags, t) {
			bad("tags", "unknown tag %q", t)
		}
		if seen[t] {
			bad("tags", "duplicate tag %q", t)
		}
		seen[t] = true
	}

	if r.ConsentAt != "" {
		if err := checkConsent(r.ConsentAt, now); err != nil {
			bad("consentAt", "%v", err)
		}
	}

	return errors.Join(errs...)
}

// ValidateBatch validates each record and the batch-wide phone uniqueness.
func ValidateBatch(records []Record, now time.Time) error {
	var errs []error
	first := make(map[string]int, len(records))
	for i, r := range records {
		if err := Validate(r, now); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
		}
		if j, dup := first[r.Phone]; dup {
			errs = append(errs, fmt.Errorf("row %d: %w: phoneE164 %s duplicates row %d", i+1, ErrInvalidRecord, r.Phone, j))
			continue
		}
		first[r.Phone] = i + 1
	}
	return errors.Join(errs...)
}

// checkEmail accepts the four shapes built from the record's own name:
// first.last, firstlast, firstNN (10-99) and first.lastN (1-9).
func checkEmail(email, name string) error {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return fmt.Errorf("%q has no domain", email)
	}
	if !slices.Contains(EmailDomains, domain) {
		return fmt.Errorf("unknown domain %q", domain)
	}

	parts := strings.Fields(strings.ToLower(name))
	if len(parts) != 2 {
		return fmt.Errorf("%q does not match name %q", email, name)
	}
	f, l := parts[0], parts[1]

	if local == f+"."+l || local == f+l {
		return nil
	}
	if n, ok := strings.CutPrefix(local, f+"."+l); ok && len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
		return nil
	}
	if n, ok := strings.CutPrefix(local, f); ok && len(n) == 2 && n[0] >= '1' && n[0] <= '9' && n[1] >= '0' && n[1] <= '9' {
		return nil
	}
	return fmt.Errorf("%q matches no known format for %q", email, name)
}

func checkConsent(s string, now time.Time) error {
	d, err := time.ParseInLocation(DateLayout, s, now.Location())
	if err != nil {
		return fmt.Errorf("%q is not YYYY-MM-DD", s)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	earliest := today.AddDate(0, 0, -ConsentWindowDays)
	if d.Before(earliest) || d.After(today) {
		return fmt.Errorf("%s outside %s..%s", s, earliest.Format(DateLayout), today.Format(DateLayout))
	}
	return nil
}
