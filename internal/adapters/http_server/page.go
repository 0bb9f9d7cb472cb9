package httpserver

import (
	"context"
	"time"

	"review_portal/internal/app"
	"review_portal/internal/domain"
)

type businessOption struct {
	domain.Business
	Active bool
}

type listState struct {
	Loading  bool
	Cards    []app.ReviewCard
	Empty    bool
	Failed   bool
	Reason   string
	Endpoint string
}

// Page is the server-side rendition of the review page. It implements
// app.View and app.Scheduler for the lifetime of one response.
type Page struct {
	Businesses []businessOption
	Result     *domain.Receipt
	AlertMsg   string
	Submitting bool
	Form       app.ReviewForm
	List       listState
	Stats      *domain.Stats
	Filter     domain.ListFilter

	// RefreshAfter > 0 renders a meta refresh back to the page, which
	// reloads the list through the normal page-load path.
	RefreshAfter time.Duration
	refreshSeq   int
}

func newPage(sel domain.Selection) *Page {
	p := &Page{}
	for _, b := range domain.Businesses {
		p.Businesses = append(p.Businesses, businessOption{Business: b})
	}
	p.MarkActive(sel.BusinessID)
	return p
}

func (p *Page) MarkActive(businessID string) {
	for i := range p.Businesses {
		p.Businesses[i].Active = p.Businesses[i].ID == businessID
	}
}

func (p *Page) ShowResult(r domain.Receipt) { p.Result = &r }
func (p *Page) HideResult() { p.Result = nil }
func (p *Page) Alert(msg string) { p.AlertMsg = msg }
func (p *Page) SetSubmitting(on bool) { p.Submitting = on }
func (p *Page) ResetForm() { p.Form = app.ReviewForm{} }

func (p *Page) ShowReviewsLoading() { p.List = listState{Loading: true} }

func (p *Page) ShowReviews(cards []app.ReviewCard) { p.List = listState{Cards: cards} }

func (p *Page) ShowNoReviews() { p.List = listState{Empty: true} }

func (p *Page) ShowReviewsError(reason, endpoint string) {
	p.List = listState{Failed: true, Reason: reason, Endpoint: endpoint}
}

func (p *Page) ShowStats(s domain.Stats) { p.Stats = &s }

// After never runs task server-side: the browser performs the reload, and the
// page-load refresh does the same work. Leaving the page drops the reload.
func (p *Page) After(delay time.Duration, _ func(ctx context.Context)) func() {
	p.refreshSeq++
	seq := p.refreshSeq
	p.RefreshAfter = delay
	return func() {
		if p.refreshSeq == seq {
			p.RefreshAfter = 0
		}
	}
}

func (p *Page) CharCount() int { return p.Form.CharCount() }

// RefreshSeconds is the meta refresh delay, rounded up to whole seconds.
func (p *Page) RefreshSeconds() int {
	if p.RefreshAfter <= 0 {
		return 0
	}
	return int((p.RefreshAfter + time.Second - 1) / time.Second)
}
