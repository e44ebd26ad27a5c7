package customer

import (
	"errors"
	"strings"
	"testing"
)

func validRecord() Record {
	return Record{
		Name:      "Priya Patel",
		Phone:     "9876543210",
		Email:     "priya.patel@gmail.com",
		WhatsApp:  "9876543210",
		Tags:      "vip,loyal",
		ConsentAt: "2025-03-01",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Record)
		wantErr string
	}{
		{"valid", func(*Record) {}, ""},
		{"no optional fields", func(r *Record) { r.Email = ""; r.ConsentAt = "" }, ""},
		{"concatenated email", func(r *Record) { r.Email = "priyapatel@yahoo.com" }, ""},
		{"two digit email", func(r *Record) { r.Email = "priya42@business.in" }, ""},
		{"one digit email", func(r *Record) { r.Email = "priya.patel7@enterprise.in" }, ""},
		{"single tag", func(r *Record) { r.Tags = "new" }, ""},
		{"window start", func(r *Record) { r.ConsentAt = "2024-09-16" }, ""},
		{"today", func(r *Record) { r.ConsentAt = "2025-03-15" }, ""},
		{"empty name", func(r *Record) { r.Name = "" }, "name"},
		{"short phone", func(r *Record) { r.Phone = "987654321" }, "phoneE164"},
		{"bad lead digit", func(r *Record) { r.Phone = "5876543210" }, "phoneE164"},
		{"bad whatsapp", func(r *Record) { r.WhatsApp = "12345" }, "whatsappE164"},
		{"unknown domain", func(r *Record) { r.Email = "priya.patel@example.org" }, "unknown domain"},
		{"unknown format", func(r *Record) { r.Email = "p_patel@gmail.com" }, "no known format"},
		{"email of another name", func(r *Record) { r.Email = "zzz.qqq@gmail.com" }, "no known format"},
		{"last name swapped", func(r *Record) { r.Email = "priya.sharma@gmail.com" }, "no known format"},
		{"digits out of range", func(r *Record) { r.Email = "priya05@gmail.com" }, "no known format"},
		{"mixed case name", func(r *Record) { r.Name = "PRIYA Patel" }, ""},
		{"no tags", func(r *Record) { r.Tags = "" }, "tags"},
		{"three tags", func(r *Record) { r.Tags = "vip,new,trial" }, "want 1 or 2"},
		{"unknown tag", func(r *Record) { r.Tags = "gold" }, "unknown tag"},
		{"duplicate tag", func(r *Record) { r.Tags = "vip,vip" }, "duplicate tag"},
		{"bad date format", func(r *Record) { r.ConsentAt = "01/03/2025" }, "YYYY-MM-DD"},
		{"future date", func(r *Record) { r.ConsentAt = "2025-03-16" }, "outside"},
		{"too old", func(r *Record) { r.ConsentAt = "2024-09-15" }, "outside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			err := Validate(r, fixedNow)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("error should wrap ErrInvalidRecord: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBatchDuplicatePhone(t *testing.T) {
	a := validRecord()
	b := validRecord()
	b.Name = "Raj Sharma"

	err := ValidateBatch([]Record{a, b}, fixedNow)
	if err == nil {
		t.Fatal("expected duplicate phone error")
	}
	if !strings.Contains(err.Error(), "duplicates row 1") {
		t.Errorf("error %q should name the first row", err)
	}
}
