package entity

import (
	"errors"
	"fmt"
)

// ErrNoLeads is returned when a document decodes but carries no leads.
// An empty batch is a hard failure, never an empty output.
var ErrNoLeads = errors.New("no leads to process")

// FormatError reports input that does not decode as a lead document.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed lead document: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseError reports a lead whose entryDate is not a valid ISO-8601
// offset date-time. It aborts the whole batch.
type ParseError struct {
	Lead *Lead
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid entryDate %q on lead %q: %v", e.Lead.EntryDate, e.Lead.ID, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
