package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type Aspect struct {
	Category  string `json:"category"`
	Sentiment string `json:"sentiment"`
}

// Review is a previously submitted review as returned by the listing endpoint.
type Review struct {
	ID               ID        `json:"id,omitempty"`
	Text             string    `json:"text"`
	CustomerName     *string   `json:"customerName,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	Date             Timestamp `json:"date"`
	OverallSentiment Sentiment `json:"overallSentiment,omitempty"`
	Aspects          []Aspect  `json:"aspects,omitempty"`
}

// Submission is the POST /reviews body. Optional fields marshal as null.
type Submission struct {
	BusinessID   string   `json:"business_id"`
	Text         string   `json:"text"`
	CustomerName *string  `json:"customer_name"`
	Rating       *float64 `json:"rating"`
	ModelType    string   `json:"model_type"`
}

type Receipt struct {
	ReviewID ID     `json:"review_id"`
	Message  string `json:"message"`
}

type Stats struct {
	TotalReviews int   `json:"totalReviews"`
	Positive     int   `json:"positive"`
	Negative     int   `json:"negative"`
	Neutral      int   `json:"neutral"`
	Trend        []int `json:"trend"`
}

// ListFilter narrows the listing. Zero value lists everything.
type ListFilter struct {
	Sentiment string `json:"sentiment,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Session is the per-visitor page state kept between requests.
type Session struct {
	Selection Selection  `json:"selection"`
	Result    *Receipt   `json:"result,omitempty"`
	Filter    ListFilter `json:"filter"`
}

func NewSession() Session { return Session{Selection: DefaultSelection()} }

// ID accepts either a JSON string or a JSON number.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(n.String())
	}
	return nil
}

func (id ID) String() string { return string(id) }

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp tolerates the zone-less ISO timestamps the API emits.
// Unparseable values decode to the zero time.
type Timestamp struct{ time.Time }

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// null or a non-string value
		t.Time = time.Time{}
		return nil
	}
	t.Time = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts
		}
	}
	return time.Time{}
}
