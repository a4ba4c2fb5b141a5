package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryTimeParsesOffsetDateTime(t *testing.T) {
	l := &Lead{ID: "1", EntryDate: "2024-01-01T10:00:00+05:00"}

	got, err := l.EntryTime()
	require.NoError(t, err)

	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.FixedZone("", 5*60*60))
	assert.True(t, got.Equal(want))
}

func TestEntryTimeRejectsMalformedDate(t *testing.T) {
	l := &Lead{ID: "1", EntryDate: "not-a-date"}

	_, err := l.EntryTime()
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Same(t, l, parseErr.Lead)
	assert.Contains(t, parseErr.Error(), "not-a-date")
}

func TestEntryTimeRejectsDateWithoutOffset(t *testing.T) {
	// RFC 3339 requires an offset; a bare local date-time is invalid input.
	l := &Lead{ID: "1", EntryDate: "2024-01-01T10:00:00"}

	_, err := l.EntryTime()
	assert.Error(t, err)
}

func TestLeadStringIncludesAllFields(t *testing.T) {
	l := &Lead{
		ID:        "1",
		Email:     "a@x.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "123 Main St",
		EntryDate: "2024-01-01T10:00:00Z",
	}

	s := l.String()
	assert.Contains(t, s, `id="1"`)
	assert.Contains(t, s, `email="a@x.com"`)
	assert.Contains(t, s, `entryDate="2024-01-01T10:00:00Z"`)
}
