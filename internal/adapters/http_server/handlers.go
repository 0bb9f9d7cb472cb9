package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"review_portal/internal/adapters/observability"
	"review_portal/internal/app"
	"review_portal/internal/domain"
)

type Handlers struct {
	API      domain.ReviewsAPI
	Sessions domain.SessionStore
	Loc      *time.Location
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// session falls back to a fresh session when the store is unavailable,
// so the page still renders against the default business.
func (h *Handlers) session(ctx context.Context) domain.Session {
	id := sessionID(ctx)
	sess, ok, err := h.Sessions.Load(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("session", id).Msg("load session failed")
	}
	if err != nil || !ok {
		return domain.NewSession()
	}
	return sess
}

func (h *Handlers) save(ctx context.Context, sess domain.Session) {
	if err := h.Sessions.Save(ctx, sessionID(ctx), sess); err != nil {
		log.Warn().Err(err).Msg("save session failed")
	}
}

func (h *Handlers) client(sess domain.Session) (*app.ReviewClient, *Page) {
	p := newPage(sess.Selection)
	p.Result = sess.Result
	p.Filter = sess.Filter
	return app.NewReviewClient(h.API, p, p, h.Loc), p
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.session(ctx)

	c, p := h.client(sess)
	defer c.Close()

	observability.ObserveOutcome("list", c.RefreshReviews(ctx, sess.Selection, sess.Filter))
	_ = c.LoadStats(ctx, sess.Selection)
	render(w, http.StatusOK, p)
}

func (h *Handlers) selectBusiness(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "form could not be parsed")
		return
	}
	b, ok := domain.LookupOption(r.PostForm.Get("business"), r.PostForm.Get("model"))
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Unknown business", "business and model must name one of the listed options")
		return
	}

	ctx := r.Context()
	sess := h.session(ctx)
	sess.Result = nil
	sess.Filter = domain.ListFilter{}

	c, p := h.client(sess)
	defer c.Close()

	c.SelectBusiness(ctx, &sess.Selection, b.ID, b.ModelType)
	_ = c.LoadStats(ctx, sess.Selection)
	h.save(ctx, sess)
	render(w, http.StatusOK, p)
}

func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "form could not be parsed")
		return
	}
	form := app.ReviewForm{
		CustomerName: r.PostForm.Get("customer_name"),
		Rating:       r.PostForm.Get("rating"),
		Text:         r.PostForm.Get("review_text"),
	}

	ctx := r.Context()
	sess := h.session(ctx)

	c, p := h.client(sess)
	defer c.Close()
	p.Form = form

	err := c.SubmitReview(ctx, sess.Selection, form)
	observability.ObserveOutcome("submit", err)
	if err == nil {
		sess.Result = p.Result
		h.save(ctx, sess)
	}

	_ = c.RefreshReviews(ctx, sess.Selection, sess.Filter)
	_ = c.LoadStats(ctx, sess.Selection)
	render(w, submitStatus(err), p)
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "form could not be parsed")
		return
	}

	ctx := r.Context()
	sess := h.session(ctx)
	sess.Filter = domain.ListFilter{
		Sentiment: r.PostForm.Get("sentiment"),
		Category:  r.PostForm.Get("category"),
	}
	h.save(ctx, sess)

	c, p := h.client(sess)
	defer c.Close()

	observability.ObserveOutcome("list", c.RefreshReviews(ctx, sess.Selection, sess.Filter))
	_ = c.LoadStats(ctx, sess.Selection)
	render(w, http.StatusOK, p)
}

func submitStatus(err error) int {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
