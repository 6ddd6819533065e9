package recommendation

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/valueplus/internal/matching"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

type recommendationResponse struct {
	ID              int64                   `json:"id"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description,omitempty"`
	Cost            decimal.Decimal         `json:"cost"`
	ValueAddPercent float64                 `json:"value_add_percent"`
	Category        recommendation.Category `json:"category"`
	Image           string                  `json:"image,omitempty"`
}

type queryResponse struct {
	PropertyType property.Type   `json:"property_type"`
	AreaSqFt     float64         `json:"area_sqft"`
	Budget       decimal.Decimal `json:"budget"`
}

type matchResponse struct {
	Query           queryResponse            `json:"query"`
	Recommendations []recommendationResponse `json:"recommendations"`
	Message         string                   `json:"message,omitempty"`
}

func toResponse(r *recommendation.Record) recommendationResponse {
	return recommendationResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Cost:            r.Cost,
		ValueAddPercent: r.ValueAddPercent,
		Category:        r.Category,
		Image:           r.ImageRef,
	}
}

func toResponseList(recs []recommendation.Record) []recommendationResponse {
	resp := make([]recommendationResponse, len(recs))
	for i := range recs {
		resp[i] = toResponse(&recs[i])
	}

	return resp
}

func toMatchResponse(res *matching.Result) matchResponse {
	resp := matchResponse{
		Query: queryResponse{
			PropertyType: res.Query.PropertyType,
			AreaSqFt:     res.Query.AreaSqFt,
			Budget:       res.Query.Budget,
		},
		Recommendations: toResponseList(res.Recommendations),
	}

	if res.Empty() {
		resp.Message = "No recommendations found for your budget."
	}

	return resp
}
