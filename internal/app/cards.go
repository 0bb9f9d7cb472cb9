package app

import (
	"strconv"
	"strings"
	"time"

	"review_portal/internal/domain"
)

const (
	MaxListed  = 20
	MaxAspects = 5

	dateLayout = "Jan 2, 2006, 03:04 PM"
)

// ReviewCard is a review reduced to display strings. It carries no markup;
// escaping is the renderer's job.
type ReviewCard struct {
	Customer       string
	Date           string
	Text           string
	Sentiment      string // css modifier: positive|negative|neutral or the raw label
	SentimentLabel string
	Emoji          string
	Rating         string // empty when the review has no rating
	Aspects        []AspectBadge
}

type AspectBadge struct {
	Label     string
	Sentiment string
}

var sentimentEmoji = map[domain.Sentiment]string{
	domain.SentimentPositive: "😊",
	domain.SentimentNegative: "😞",
	domain.SentimentNeutral:  "😐",
}

// Cards formats at most MaxListed reviews, keeping server order.
func Cards(rs []domain.Review, loc *time.Location) []ReviewCard {
	if len(rs) > MaxListed {
		rs = rs[:MaxListed]
	}
	out := make([]ReviewCard, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewCard(r, loc))
	}
	return out
}

func NewCard(r domain.Review, loc *time.Location) ReviewCard {
	sent := r.OverallSentiment
	if sent == "" {
		sent = domain.SentimentNeutral
	}
	emoji, ok := sentimentEmoji[sent]
	if !ok {
		emoji = "📊"
	}

	c := ReviewCard{
		Customer:       "Anonymous",
		Date:           formatDate(r.Date.Time, loc),
		Text:           r.Text,
		Sentiment:      string(sent),
		SentimentLabel: strings.ToUpper(string(sent)),
		Emoji:          emoji,
	}
	if r.CustomerName != nil && *r.CustomerName != "" {
		c.Customer = *r.CustomerName
	}
	// the API reports a missing rating as 0
	if r.Rating != nil && *r.Rating != 0 {
		c.Rating = "⭐ " + strconv.FormatFloat(*r.Rating, 'f', -1, 64) + "/5"
	}

	aspects := r.Aspects
	if len(aspects) > MaxAspects {
		aspects = aspects[:MaxAspects]
	}
	for _, a := range aspects {
		c.Aspects = append(c.Aspects, AspectBadge{
			Label:     strings.ReplaceAll(a.Category, "_", " "),
			Sentiment: a.Sentiment,
		})
	}
	return c
}

func formatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "Unknown date"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dateLayout)
}
