package entity

import (
	"fmt"
	"time"
)

// Lead represents one contact submission from a lead document.
// Struct field order is the serialization order of the output document.
type Lead struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	EntryDate string `json:"entryDate"`
}

// EntryTime parses the entryDate field as an ISO-8601 offset date-time.
// The parse failure is reported as a ParseError naming the lead.
func (l *Lead) EntryTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, l.EntryDate)
	if err != nil {
		return time.Time{}, &ParseError{Lead: l, Err: err}
	}
	return t, nil
}

func (l *Lead) String() string {
	return fmt.Sprintf("Lead{id=%q, email=%q, firstName=%q, lastName=%q, address=%q, entryDate=%q}",
		l.ID, l.Email, l.FirstName, l.LastName, l.Address, l.EntryDate)
}

// LeadDocument is the top-level shape of input and output documents.
type LeadDocument struct {
	Leads []*Lead `json:"leads"`
}
