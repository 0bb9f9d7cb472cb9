package app

import (
	"context"
	"time"

	"review_portal/internal/domain"
)

// View is the render target driven by ReviewClient. Calls arrive in order
// from a single goroutine.
type View interface {
	MarkActive(businessID string)
	ShowResult(r domain.Receipt)
	HideResult()
	Alert(msg string)
	SetSubmitting(on bool)
	ResetForm()

	ShowReviewsLoading()
	ShowReviews(cards []ReviewCard)
	ShowNoReviews()
	ShowReviewsError(reason, endpoint string)

	ShowStats(s domain.Stats)
}

// Scheduler defers a task. The returned cancel must make sure the task
// never runs afterwards; calling it more than once is allowed.
type Scheduler interface {
	After(delay time.Duration, task func(ctx context.Context)) (cancel func())
}
