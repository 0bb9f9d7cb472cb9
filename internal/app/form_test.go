package app_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"review_portal/internal/app"
	"review_portal/internal/domain"
)

func TestBuildSubmission(t *testing.T) {
	sel := domain.Selection{BusinessID: "coursera_business", ModelType: "coursera"}
	cases := []struct {
		name string
		in   app.ReviewForm
		want domain.Submission
	}{
		{
			name: "all fields",
			in:   app.ReviewForm{CustomerName: " Emma ", Rating: "5", Text: " Great course "},
			want: domain.Submission{BusinessID: "coursera_business", ModelType: "coursera", Text: "Great course", CustomerName: ptr("Emma"), Rating: ptr(5.0)},
		},
		{
			name: "blank optionals",
			in:   app.ReviewForm{Text: "ok"},
			want: domain.Submission{BusinessID: "coursera_business", ModelType: "coursera", Text: "ok"},
		},
		{
			name: "non-numeric rating",
			in:   app.ReviewForm{Rating: "five", Text: "ok"},
			want: domain.Submission{BusinessID: "coursera_business", ModelType: "coursera", Text: "ok"},
		},
		{
			name: "NaN rating",
			in:   app.ReviewForm{Rating: "NaN", Text: "ok"},
			want: domain.Submission{BusinessID: "coursera_business", ModelType: "coursera", Text: "ok"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := app.BuildSubmission(sel, tc.in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("submission mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReviewForm_CharCountRunes(t *testing.T) {
	if n := (app.ReviewForm{Text: "héllo 😊"}).CharCount(); n != 7 {
		t.Fatalf("char count: %d", n)
	}
}
