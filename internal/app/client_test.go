package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"review_portal/internal/app"
	"review_portal/internal/domain"
)

// ---- fakes ----

type fakeAPI struct {
	receipt   domain.Receipt
	submitErr error
	reviews   []domain.Review
	listErr   error
	stats     domain.Stats
	statsErr  error

	submitted  []domain.Submission
	listCalls  []string
	lastFilter domain.ListFilter
}

func (f *fakeAPI) SubmitReview(ctx context.Context, s domain.Submission) (domain.Receipt, error) {
	f.submitted = append(f.submitted, s)
	return f.receipt, f.submitErr
}

func (f *fakeAPI) ListReviews(ctx context.Context, businessID string, lf domain.ListFilter) ([]domain.Review, error) {
	f.listCalls = append(f.listCalls, businessID)
	f.lastFilter = lf
	return f.reviews, f.listErr
}

func (f *fakeAPI) GetStats(ctx context.Context, businessID string) (domain.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAPI) BaseURL() string { return "http://api.test/api" }

// recView records every call in order, plus the latest state.
type recView struct {
	calls []string

	active     string
	result     *domain.Receipt
	alerts     []string
	submitting bool
	cards      []app.ReviewCard
	empty      bool
	listErr    string
	endpoint   string
	stats      *domain.Stats
}

func (v *recView) MarkActive(id string) { v.calls = append(v.calls, "active"); v.active = id }
func (v *recView) ShowResult(r domain.Receipt) { v.calls = append(v.calls, "result"); v.result = &r }
func (v *recView) HideResult() { v.calls = append(v.calls, "hide"); v.result = nil }
func (v *recView) Alert(msg string) { v.calls = append(v.calls, "alert"); v.alerts = append(v.alerts, msg) }
func (v *recView) SetSubmitting(on bool) { v.calls = append(v.calls, "submitting"); v.submitting = on }
func (v *recView) ResetForm() { v.calls = append(v.calls, "reset") }
func (v *recView) ShowReviewsLoading() { v.calls = append(v.calls, "loading") }
func (v *recView) ShowReviews(cards []app.ReviewCard) { v.calls = append(v.calls, "reviews"); v.cards = cards }
func (v *recView) ShowNoReviews() { v.calls = append(v.calls, "empty"); v.empty = true }
func (v *recView) ShowReviewsError(reason, endpoint string) {
	v.calls = append(v.calls, "list-error")
	v.listErr, v.endpoint = reason, endpoint
}
func (v *recView) ShowStats(s domain.Stats) { v.calls = append(v.calls, "stats"); v.stats = &s }

type pending struct {
	delay     time.Duration
	task      func(context.Context)
	cancelled bool
}

// manualSched holds tasks until the test fires them.
type manualSched struct{ tasks []*pending }

func (s *manualSched) After(d time.Duration, task func(context.Context)) func() {
	p := &pending{delay: d, task: task}
	s.tasks = append(s.tasks, p)
	return func() { p.cancelled = true }
}

func (s *manualSched) fire() {
	for _, p := range s.tasks {
		if !p.cancelled {
			p.task(context.Background())
		}
	}
	s.tasks = nil
}

func setup(api *fakeAPI) (*app.ReviewClient, *recView, *manualSched) {
	v := &recView{}
	s := &manualSched{}
	return app.NewReviewClient(api, v, s, time.UTC), v, s
}

func ptr[T any](v T) *T { return &v }

// ---- tests ----

func TestSubmitReview_BlankTextNeverCallsAPI(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		api := &fakeAPI{}
		rc, v, s := setup(api)

		err := rc.SubmitReview(context.Background(), domain.DefaultSelection(), app.ReviewForm{Text: text, CustomerName: "Ana"})
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("text %q: expected ValidationError, got %v", text, err)
		}
		if len(api.submitted) != 0 {
			t.Fatalf("text %q: network call issued", text)
		}
		if len(v.alerts) != 1 || v.alerts[0] != "Error: Please enter a review text" {
			t.Fatalf("unexpected alerts: %v", v.alerts)
		}
		if v.submitting || len(s.tasks) != 0 {
			t.Fatalf("unexpected state: submitting=%v tasks=%d", v.submitting, len(s.tasks))
		}
	}
}

func TestSubmitReview_SuccessShowsReceiptAndSchedulesRefresh(t *testing.T) {
	api := &fakeAPI{
		receipt: domain.Receipt{ReviewID: "r1", Message: "queued"},
		reviews: []domain.Review{{Text: "new one"}},
	}
	rc, v, s := setup(api)
	sel := domain.Selection{BusinessID: "hotel_business", ModelType: "hotel"}

	err := rc.SubmitReview(context.Background(), sel, app.ReviewForm{CustomerName: "  ", Rating: "4.5", Text: "  Clean rooms  "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(api.submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(api.submitted))
	}
	sub := api.submitted[0]
	if sub.BusinessID != "hotel_business" || sub.ModelType != "hotel" || sub.Text != "Clean rooms" {
		t.Fatalf("unexpected submission: %+v", sub)
	}
	if sub.CustomerName != nil || sub.Rating == nil || *sub.Rating != 4.5 {
		t.Fatalf("unexpected optionals: %+v", sub)
	}

	if v.result == nil || v.result.ReviewID != "r1" || v.result.Message != "queued" {
		t.Fatalf("unexpected result: %+v", v.result)
	}
	if v.submitting {
		t.Fatalf("submit control left disabled")
	}
	want := "submitting,result,reset,submitting"
	if got := strings.Join(v.calls, ","); got != want {
		t.Fatalf("calls: got %s want %s", got, want)
	}

	// refresh is deferred, not immediate
	if len(api.listCalls) != 0 {
		t.Fatalf("list refreshed too early")
	}
	if len(s.tasks) != 1 || s.tasks[0].delay != app.RefreshDelay || app.RefreshDelay != time.Second {
		t.Fatalf("expected one 1s refresh, got %+v", s.tasks)
	}
	s.fire()
	if len(api.listCalls) != 1 || api.listCalls[0] != "hotel_business" {
		t.Fatalf("expected deferred refresh for hotel_business, got %v", api.listCalls)
	}
}

func TestSubmitReview_FailuresAlertAndReenable(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		alert string
	}{
		{"detail", &domain.RequestError{Op: "submit", Status: 500, Detail: "db down"}, "Error: db down"},
		{"no detail", &domain.RequestError{Op: "submit", Status: 500}, "Error: Failed to process review"},
		{"transport", &domain.TransportError{Op: "submit", Endpoint: "http://x", Err: errors.New("refused")},
			"Error: Error connecting to server. Please make sure the backend is running."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{submitErr: tc.err}
			rc, v, s := setup(api)

			err := rc.SubmitReview(context.Background(), domain.DefaultSelection(), app.ReviewForm{Text: "hello"})
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if len(v.alerts) != 1 || v.alerts[0] != tc.alert {
				t.Fatalf("alerts: %v", v.alerts)
			}
			if v.submitting {
				t.Fatalf("submit control left disabled")
			}
			if v.result != nil || len(s.tasks) != 0 {
				t.Fatalf("failure must not show a result or schedule a refresh")
			}
			for _, c := range v.calls {
				if c == "reset" {
					t.Fatalf("form must be kept on failure")
				}
			}
		})
	}
}

func TestSelectBusiness_ReplacesBothFields(t *testing.T) {
	api := &fakeAPI{}
	rc, v, _ := setup(api)
	sel := domain.DefaultSelection()

	rc.SelectBusiness(context.Background(), &sel, "hotel_business", "hotel")
	if sel != (domain.Selection{BusinessID: "hotel_business", ModelType: "hotel"}) {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if v.active != "hotel_business" {
		t.Fatalf("active: %s", v.active)
	}

	rc.SelectBusiness(context.Background(), &sel, "coursera_business", "coursera")
	if sel != (domain.Selection{BusinessID: "coursera_business", ModelType: "coursera"}) {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if v.active != "coursera_business" {
		t.Fatalf("active: %s", v.active)
	}
	if got := strings.Join(api.listCalls, ","); got != "hotel_business,coursera_business" {
		t.Fatalf("list calls: %s", got)
	}
	if !v.empty {
		t.Fatalf("expected empty state for []")
	}
}

func TestSelectBusiness_HidesResultAndCancelsStaleRefresh(t *testing.T) {
	api := &fakeAPI{receipt: domain.Receipt{ReviewID: "r1", Message: "queued"}}
	rc, v, s := setup(api)
	sel := domain.DefaultSelection()

	if err := rc.SubmitReview(context.Background(), sel, app.ReviewForm{Text: "hi"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	rc.SelectBusiness(context.Background(), &sel, "hotel_business", "hotel")
	if v.result != nil {
		t.Fatalf("result should be hidden after selecting a business")
	}

	s.fire()
	// only the selection's own refresh; the deferred one was cancelled
	if got := strings.Join(api.listCalls, ","); got != "hotel_business" {
		t.Fatalf("list calls: %s", got)
	}
}

func TestClose_DropsPendingRefresh(t *testing.T) {
	api := &fakeAPI{receipt: domain.Receipt{ReviewID: "r1", Message: "queued"}}
	rc, _, s := setup(api)

	if err := rc.SubmitReview(context.Background(), domain.DefaultSelection(), app.ReviewForm{Text: "hi"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	rc.Close()
	s.fire()
	if len(api.listCalls) != 0 {
		t.Fatalf("refresh ran after Close")
	}

	if err := rc.SubmitReview(context.Background(), domain.DefaultSelection(), app.ReviewForm{Text: "again"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(s.tasks) != 0 {
		t.Fatalf("closed client scheduled a refresh")
	}
}

func TestRefreshReviews_ErrorNamesEndpoint(t *testing.T) {
	api := &fakeAPI{listErr: &domain.RequestError{Op: "list", Status: 500}}
	rc, v, _ := setup(api)

	if err := rc.RefreshReviews(context.Background(), domain.DefaultSelection(), domain.ListFilter{}); err == nil {
		t.Fatalf("expected error")
	}
	if v.listErr != "Failed to load reviews" || v.endpoint != "http://api.test/api" {
		t.Fatalf("unexpected error panel: %q %q", v.listErr, v.endpoint)
	}
	if len(v.alerts) != 0 {
		t.Fatalf("listing errors are inline, not alerts")
	}
	if v.calls[0] != "loading" {
		t.Fatalf("loading placeholder must come first: %v", v.calls)
	}
}

func TestRefreshReviews_CapsAtTwentyAndPassesFilter(t *testing.T) {
	rs := make([]domain.Review, 25)
	for i := range rs {
		rs[i] = domain.Review{Text: string(rune('a' + i))}
	}
	api := &fakeAPI{reviews: rs}
	rc, v, _ := setup(api)

	f := domain.ListFilter{Sentiment: "positive"}
	if err := rc.RefreshReviews(context.Background(), domain.DefaultSelection(), f); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(v.cards) != 20 || v.cards[0].Text != "a" || v.cards[19].Text != "t" {
		t.Fatalf("expected first 20 in server order, got %d", len(v.cards))
	}
	if api.lastFilter != f {
		t.Fatalf("filter not forwarded: %+v", api.lastFilter)
	}
}

func TestLoadStats(t *testing.T) {
	api := &fakeAPI{stats: domain.Stats{TotalReviews: 3, Positive: 2, Neutral: 1}}
	rc, v, _ := setup(api)
	if err := rc.LoadStats(context.Background(), domain.DefaultSelection()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.stats == nil || v.stats.TotalReviews != 3 {
		t.Fatalf("stats not shown: %+v", v.stats)
	}

	api2 := &fakeAPI{statsErr: errors.New("nope")}
	rc2, v2, _ := setup(api2)
	if err := rc2.LoadStats(context.Background(), domain.DefaultSelection()); err == nil {
		t.Fatalf("expected error")
	}
	if v2.stats != nil || len(v2.alerts) != 0 {
		t.Fatalf("stats failure must stay silent on the page")
	}
}
