// Package domain holds anchor extraction DTOs
package domain

import "anchors/internal/core/extract"

// ExtractInput requests anchor extraction for one document
type ExtractInput struct {
	ID        int64  `json:"id" validate:"required,min=1" example:"42"`
	Canonical string `json:"canonical" validate:"required,min=2,max=120" example:"caseton de poliestireno"`
	// BodyText overrides the stored content when the caller already has a
	// cleaned draft. Empty means use what is stored
	BodyText string `json:"body_text,omitempty" validate:"omitempty,max=2000000"`
}

// ExtractOutput is the extraction result for one document
type ExtractOutput struct {
	ID     int64          `json:"id"`
	Result extract.Result `json:"result"`
}
