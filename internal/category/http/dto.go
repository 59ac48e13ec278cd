package http

import (
	"time"

	"github.com/safariwheels/fleet-booking-backend/internal/category"
)

type CategoryResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PriceFromCents int64     `json:"price_from_cents"`
	Features       []string  `json:"features"`
	Popular        bool      `json:"popular"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCategoryResponse(c *category.Category) CategoryResponse {
	features := c.Features
	if features == nil {
		features = make([]string, 0)
	}
	return CategoryResponse{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		PriceFromCents: c.PriceFromCents,
		Features:       features,
		Popular:        c.Popular,
		CreatedAt:      c.CreatedAt,
	}
}
