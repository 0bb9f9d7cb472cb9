package domain

import "context"

type ReviewsAPI interface {
	SubmitReview(ctx context.Context, s Submission) (Receipt, error)
	ListReviews(ctx context.Context, businessID string, f ListFilter) ([]Review, error)
	GetStats(ctx context.Context, businessID string) (Stats, error)

	// BaseURL is the configured API endpoint, shown in diagnostics.
	BaseURL() string
}

type SessionStore interface {
	Load(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, id string, s Session) error
	Delete(ctx context.Context, id string) error
}
