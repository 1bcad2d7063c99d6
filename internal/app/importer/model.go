package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// LegacyDeck is the top-level document of a cards.json export.
type LegacyDeck struct {
	Cards []LegacyCard `json:"cards"`
}

// LegacyCard is one card of a cards.json export. Review state is optional;
// rows read from spreadsheets only carry the two faces.
type LegacyCard struct {
	ID            string    `json:"id,omitempty"`
	Front         string    `json:"front"`
	Back          string    `json:"back"`
	LastReviewed  *flexTime `json:"lastReviewed,omitempty"`
	NextReviewDue *flexTime `json:"nextReviewDue,omitempty"`
	ReviewCount   int       `json:"reviewCount"`
	CorrectCount  int       `json:"correctCount"`
	EaseFactor    float64   `json:"easeFactor"`
	Interval      int       `json:"interval"`
	Repetitions   int       `json:"repetitions"`
}

// flexTime accepts RFC 3339 strings and millisecond Unix timestamps,
// the two date encodings found in exported decks.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("parse time %q: %w", s, err)
		}
		t.Time = parsed.UTC()
		return nil
	}

	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("parse time %s: expected RFC 3339 string or epoch millis", b)
	}
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}

func (t *flexTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}
