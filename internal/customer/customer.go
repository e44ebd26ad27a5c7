// Package customer generates fictitious customer records for bulk-upload
// testing. Every random draw goes through a Generator's own source, so a
// seed fully determines a batch.
package customer

import "strings"

// Columns is the spreadsheet header, in output order.
var Columns = []string{"name", "phoneE164", "email", "whatsappE164", "tags", "consentAt"}

// Record is one generated customer. Optional fields are empty when absent.
type Record struct {
	Name      string `json:"name"`
	Phone     string `json:"phoneE164"`
	Email     string `json:"email"`
	WhatsApp  string `json:"whatsappE164"`
	Tags      string `json:"tags"`
	ConsentAt string `json:"consentAt"`
}

// Row returns the record's values in Columns order.
func (r Record) Row() []string {
	return []string{r.Name, r.Phone, r.Email, r.WhatsApp, r.Tags, r.ConsentAt}
}

// FromRow builds a record from values in Columns order. Missing trailing
// values are treated as empty.
func FromRow(row []string) Record {
	v := make([]string, len(Columns))
	copy(v, row)
	return Record{
		Name:      strings.TrimSpace(v[0]),
		Phone:     strings.TrimSpace(v[1]),
		Email:     strings.TrimSpace(v[2]),
		WhatsApp:  strings.TrimSpace(v[3]),
		Tags:      strings.TrimSpace(v[4]),
		ConsentAt: strings.TrimSpace(v[5]),
	}
}

// TagList splits the comma-joined tags.
func (r Record) TagList() []string {
	if r.Tags == "" {
		return nil
	}
	return strings.Split(r.Tags, ",")
}

// Summary counts what a batch contains.
type Summary struct {
	Total        int `json:"total"`
	WithEmail    int `json:"with_email"`
	WithConsent  int `json:"with_consent"`
	UniquePhones int `json:"unique_phones"`
}

// Summarize tallies records. Empty strings count as missing.
func Summarize(records []Record) Summary {
	phones := make(map[string]struct{}, len(records))
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Email != "" {
			s.WithEmail++
		}
		if r.ConsentAt != "" {
			s.WithConsent++
		}
		phones[r.Phone] = struct{}{}
	}
	s.UniquePhones = len(phones)
	return s
}
