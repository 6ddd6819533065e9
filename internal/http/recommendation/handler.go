package recommendation

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/catalog"
	"github.com/MrJamesThe3rd/valueplus/internal/http/bearer"
	"github.com/MrJamesThe3rd/valueplus/internal/http/respond"
	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
	"github.com/MrJamesThe3rd/valueplus/internal/report"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

type Handler struct {
	catalog *catalog.Service
	matcher *matching.Service
	reports *report.Service
}

func NewHandler(catalog *catalog.Service, matcher *matching.Service, reports *report.Service) *Handler {
	return &Handler{
		catalog: catalog,
		matcher: matcher,
		reports: reports,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/match", h.match)
	r.Get("/report", h.report)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(bearer.Require(session.ViewAdmin))
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/", h.create)
		r.Delete("/{id}", h.delete)
	})
}

type createRecommendationRequest struct {
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Cost            decimal.NullDecimal     `json:"cost"`
	ValueAddPercent float64                 `json:"value_add_percent"`
	Category        recommendation.Category `json:"category"`
	Image           string                  `json:"image"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRecommendationRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, err)
		return
	}

	rec, err := h.catalog.Add(r.Context(), recommendation.CreateParams{
		Title:           req.Title,
		Description:     req.Description,
		Cost:            req.Cost,
		ValueAddPercent: req.ValueAddPercent,
		Category:        req.Category,
		ImageRef:        req.Image,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	slog.Info("recommendation added", "id", rec.ID, "by", bearer.Role(r.Context()))

	respond.JSON(w, http.StatusCreated, toResponse(rec))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	recs, err := h.catalog.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(recs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	rec, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rec))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.catalog.Remove(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) match(w http.ResponseWriter, r *http.Request) {
	q, err := queryFrom(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	res, err := h.matcher.Recommend(r.Context(), q)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toMatchResponse(res))
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	q, err := queryFrom(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	sum, err := h.reports.Summary(r.Context(), q)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte(sum.Body)); err != nil {
		slog.Error("failed to write report", "error", err)
	}
}

func queryFrom(r *http.Request) (matching.Query, error) {
	v := r.URL.Query()
	return matching.ParseQuery(v.Get("property_type"), v.Get("area_sqft"), v.Get("budget"))
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("id", "invalid id")
	}

	return id, nil
}
