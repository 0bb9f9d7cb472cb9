package app

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"review_portal/internal/domain"
)

// SeedJob is one demo review waiting to be submitted.
type SeedJob struct {
	Business domain.Business
	Form     ReviewForm
}

type SeedService struct {
	api  domain.ReviewsAPI
	rand *rand.Rand
}

func NewSeedService(api domain.ReviewsAPI, r *rand.Rand) *SeedService {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SeedService{api: api, rand: r}
}

// Jobs expands the sample corpus for the given businesses. Each review gets a
// random customer and a rating in [1.0, 5.0] with one decimal.
func (s *SeedService) Jobs(businesses []domain.Business) []SeedJob {
	var out []SeedJob
	for _, b := range businesses {
		for _, text := range SampleReviews[b.ModelType] {
			rating := math.Round((1+4*s.rand.Float64())*10) / 10
			out = append(out, SeedJob{
				Business: b,
				Form: ReviewForm{
					CustomerName: sampleCustomers[s.rand.IntN(len(sampleCustomers))],
					Rating:       strconv.FormatFloat(rating, 'f', 1, 64),
					Text:         text,
				},
			})
		}
	}
	return out
}

// Submit posts one job. Safe for concurrent use as long as the API client is.
func (s *SeedService) Submit(ctx context.Context, j SeedJob) (domain.Receipt, error) {
	sub, err := BuildSubmission(j.Business.Selection(), j.Form)
	if err != nil {
		return domain.Receipt{}, err
	}
	rc, err := s.api.SubmitReview(ctx, sub)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("seed %s: %w", j.Business.ID, err)
	}
	return rc, nil
}
