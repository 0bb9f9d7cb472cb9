package app

import (
	"math"
	"strconv"
	"strings"

	"review_portal/internal/domain"
)

// ReviewForm holds the raw field values as typed by the user.
type ReviewForm struct {
	CustomerName string
	Rating       string
	Text         string
}

// CharCount is what the counter under the text area shows.
func (f ReviewForm) CharCount() int { return len([]rune(f.Text)) }

// BuildSubmission validates the form and tags it with the selection.
// Blank name and blank or non-numeric rating become null on the wire.
func BuildSubmission(sel domain.Selection, f ReviewForm) (domain.Submission, error) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return domain.Submission{}, &domain.ValidationError{Field: "text", Msg: "Please enter a review text"}
	}

	s := domain.Submission{
		BusinessID: sel.BusinessID,
		Text:       text,
		ModelType:  sel.ModelType,
	}
	if name := strings.TrimSpace(f.CustomerName); name != "" {
		s.CustomerName = &name
	}
	if r := strings.TrimSpace(f.Rating); r != "" {
		if v, err := strconv.ParseFloat(r, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			s.Rating = &v
		}
	}
	return s, nil
}
