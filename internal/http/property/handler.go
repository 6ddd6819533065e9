package property

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/http/bearer"
	"github.com/MrJamesThe3rd/valueplus/internal/http/respond"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
)

type Handler struct {
	listing *property.Listing
}

func NewHandler(listing *property.Listing) *Handler {
	return &Handler{listing: listing}
}

// Routes registers the listing endpoints. Listings are shown in the admin area only.
func (h *Handler) Routes(r chi.Router) {
	r.Use(bearer.Require(session.ViewAdmin))
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type propertyResponse struct {
	ID           int64           `json:"id"`
	Address      string          `json:"address"`
	Type         property.Type   `json:"type"`
	AreaSqFt     float64         `json:"area_sqft"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Image        string          `json:"image,omitempty"`
}

func toResponse(p *property.Record) propertyResponse {
	return propertyResponse{
		ID:           p.ID,
		Address:      p.Address,
		Type:         p.Type,
		AreaSqFt:     p.AreaSqFt,
		CurrentValue: p.CurrentValue,
		Image:        p.ImageRef,
	}
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	records := h.listing.List()

	resp := make([]propertyResponse, len(records))
	for i := range records {
		resp[i] = toResponse(&records[i])
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, apperr.Validation("id", "invalid id"))
		return
	}

	p, err := h.listing.Get(id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}
