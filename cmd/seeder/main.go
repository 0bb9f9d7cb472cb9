package main

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_portal/internal/adapters/observability"
	"review_portal/internal/adapters/reviewapi"
	"review_portal/internal/app"
	"review_portal/internal/domain"
	"review_portal/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	client, err := reviewapi.New(cfg.APIBase, cfg.APIRPS, cfg.APITimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize reviews API client")
	}

	seeder := app.NewSeedService(client, nil)
	jobs := seeder.Jobs(domain.Businesses)

	log.Info().
		Str("base", client.BaseURL()).
		Int("workers", cfg.SeedWorkers).
		Int("reviews", len(jobs)).
		Msg("seeder starting")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var (
		wg sync.WaitGroup
		ok atomic.Int64
	)

	for i, j := range jobs {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(n int, j app.SeedJob) {
			defer wg.Done()
			defer sem.Release(1)

			rc, err := seeder.Submit(ctx, j)
			if err != nil {
				log.Warn().Int("n", n+1).Str("business", j.Business.ID).Str("outcome", observability.Outcome(err)).Err(err).Msg("seed failed")
				return
			}
			ok.Add(1)
			log.Info().Int("n", n+1).Str("business", j.Business.ID).Str("review_id", rc.ReviewID.String()).Msg("seed ok")
		}(i, j)
	}

	wg.Wait()
	log.Info().Int64("submitted", ok.Load()).Int64("failed", int64(len(jobs))-ok.Load()).Int("total", len(jobs)).Msg("seeding completed")
}
