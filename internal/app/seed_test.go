package app_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"review_portal/internal/app"
	"review_portal/internal/domain"
)

func TestSeedService_JobsCoverCorpus(t *testing.T) {
	svc := app.NewSeedService(&fakeAPI{}, rand.New(rand.NewPCG(1, 2)))
	jobs := svc.Jobs(domain.Businesses)

	if len(jobs) != 60 {
		t.Fatalf("expected 60 jobs, got %d", len(jobs))
	}
	perBiz := map[string]int{}
	for _, j := range jobs {
		perBiz[j.Business.ID]++
		r, err := strconv.ParseFloat(j.Form.Rating, 64)
		if err != nil || r < 1 || r > 5 {
			t.Fatalf("rating out of range: %q", j.Form.Rating)
		}
		if j.Form.CustomerName == "" || j.Form.Text == "" {
			t.Fatalf("incomplete job: %+v", j)
		}
	}
	for _, b := range domain.Businesses {
		if perBiz[b.ID] != 20 {
			t.Fatalf("%s: expected 20 jobs, got %d", b.ID, perBiz[b.ID])
		}
	}
}

func TestSeedService_SubmitTagsSelection(t *testing.T) {
	api := &fakeAPI{receipt: domain.Receipt{ReviewID: "7", Message: "queued"}}
	svc := app.NewSeedService(api, nil)
	biz := domain.Businesses[1]

	rc, err := svc.Submit(context.Background(), app.SeedJob{
		Business: biz,
		Form:     app.ReviewForm{CustomerName: "Ava Lewis", Rating: "3.2", Text: "Nice pool"},
	})
	if err != nil || rc.ReviewID != "7" {
		t.Fatalf("unexpected: %+v %v", rc, err)
	}
	sub := api.submitted[0]
	if sub.BusinessID != biz.ID || sub.ModelType != biz.ModelType || *sub.Rating != 3.2 {
		t.Fatalf("unexpected submission: %+v", sub)
	}

	api.submitErr = &domain.RequestError{Op: "submit", Status: 500}
	_, err = svc.Submit(context.Background(), app.SeedJob{Business: biz, Form: app.ReviewForm{Text: "x"}})
	var re *domain.RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected wrapped RequestError, got %v", err)
	}
}
