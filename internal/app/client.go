package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"review_portal/internal/domain"
)

const (
	// RefreshDelay gives the API time to finish analysing a new review
	// before the list is reloaded. Best effort only.
	RefreshDelay = time.Second

	msgSubmitFailed = "Failed to process review"
	msgUnreachable  = "Error connecting to server. Please make sure the backend is running."
	msgListFailed   = "Failed to load reviews"
)

// ReviewClient runs the page operations against a View. Selection state is
// owned by the caller and passed in explicitly.
type ReviewClient struct {
	api   domain.ReviewsAPI
	view  View
	sched Scheduler
	loc   *time.Location

	cancelRefresh func()
	closed        bool
}

func NewReviewClient(api domain.ReviewsAPI, view View, sched Scheduler, loc *time.Location) *ReviewClient {
	if loc == nil {
		loc = time.Local
	}
	return &ReviewClient{api: api, view: view, sched: sched, loc: loc}
}

// SelectBusiness switches both selection fields at once and reloads the list.
func (c *ReviewClient) SelectBusiness(ctx context.Context, sel *domain.Selection, businessID, modelType string) {
	sel.BusinessID = businessID
	sel.ModelType = modelType

	// a refresh queued for the previous business is stale now
	c.cancelPending()

	c.view.MarkActive(businessID)
	c.view.HideResult()
	c.RefreshReviews(ctx, *sel, domain.ListFilter{})
}

// SubmitReview validates the form and posts it. The returned error is
// already surfaced on the view; it is returned for metrics and logging.
func (c *ReviewClient) SubmitReview(ctx context.Context, sel domain.Selection, f ReviewForm) error {
	sub, err := BuildSubmission(sel, f)
	if err != nil {
		c.view.Alert("Error: " + err.Error())
		return err
	}

	c.view.SetSubmitting(true)
	defer c.view.SetSubmitting(false)

	rc, err := c.api.SubmitReview(ctx, sub)
	if err != nil {
		log.Error().Err(err).Str("business", sel.BusinessID).Msg("submit review failed")
		c.view.Alert("Error: " + alertMessage(err))
		return err
	}

	c.view.ShowResult(rc)
	c.view.ResetForm()

	c.cancelPending()
	if !c.closed {
		c.cancelRefresh = c.sched.After(RefreshDelay, func(ctx context.Context) {
			if c.closed {
				return
			}
			c.RefreshReviews(ctx, sel, domain.ListFilter{})
		})
	}
	return nil
}

// RefreshReviews replaces the list with a fresh server response.
func (c *ReviewClient) RefreshReviews(ctx context.Context, sel domain.Selection, f domain.ListFilter) error {
	c.view.ShowReviewsLoading()

	rs, err := c.api.ListReviews(ctx, sel.BusinessID, f)
	if err != nil {
		log.Error().Err(err).Str("business", sel.BusinessID).Msg("load reviews failed")
		c.view.ShowReviewsError(msgListFailed, c.api.BaseURL())
		return err
	}
	if len(rs) == 0 {
		c.view.ShowNoReviews()
		return nil
	}
	c.view.ShowReviews(Cards(rs, c.loc))
	return nil
}

// LoadStats fills the summary panel. Failures leave the panel hidden.
func (c *ReviewClient) LoadStats(ctx context.Context, sel domain.Selection) error {
	st, err := c.api.GetStats(ctx, sel.BusinessID)
	if err != nil {
		log.Warn().Err(err).Str("business", sel.BusinessID).Msg("load stats failed")
		return err
	}
	c.view.ShowStats(st)
	return nil
}

// Close drops any pending deferred refresh. Later submissions schedule nothing.
func (c *ReviewClient) Close() {
	c.closed = true
	c.cancelPending()
}

func (c *ReviewClient) cancelPending() {
	if c.cancelRefresh != nil {
		c.cancelRefresh()
		c.cancelRefresh = nil
	}
}

func alertMessage(err error) string {
	var (
		ve *domain.ValidationError
		re *domain.RequestError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Msg
	case errors.As(err, &re):
		return re.Message(msgSubmitFailed)
	default:
		return msgUnreachable
	}
}
