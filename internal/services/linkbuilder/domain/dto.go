package domain

import "anchors/internal/core/assign"

// SetMotherInput selects the mother document and its canonical phrase
type SetMotherInput struct {
	ID        int64  `json:"id" validate:"required,min=1" example:"42"`
	Canonical string `json:"canonical" validate:"required,min=2,max=120" example:"caseton de poliestireno"`
	Query     string `json:"query,omitempty" validate:"omitempty,max=200"`
	InBody    bool   `json:"in_body,omitempty"`
	// BodyText overrides the stored content for anchor mining
	BodyText string `json:"body_text,omitempty" validate:"omitempty,max=2000000"`
}

// SetDaughtersInput selects the documents the mother will link to
type SetDaughtersInput struct {
	IDs    []int64 `json:"ids" validate:"required,min=1,dive,min=1"`
	Query  string  `json:"query,omitempty" validate:"omitempty,max=200"`
	InBody bool    `json:"in_body,omitempty"`
}

// SetGranddaughtersInput selects the documents the daughters will link to
type SetGranddaughtersInput struct {
	IDs    []int64 `json:"ids" validate:"required,min=1,dive,min=1"`
	Query  string  `json:"query,omitempty" validate:"omitempty,max=200"`
	InBody bool    `json:"in_body,omitempty"`
}

// ExportSummary recaps what the exported plan contains
type ExportSummary struct {
	Mother struct {
		ID      int64 `json:"id"`
		Anchors int   `json:"anchors"`
	} `json:"mother"`
	Daughters struct {
		Count   int `json:"count"`
		Anchors int `json:"anchors"`
	} `json:"daughters"`
	Granddaughters struct {
		Count int `json:"count"`
	} `json:"granddaughters"`
}

// Export is the rendered link plan
type Export struct {
	Filename string        `json:"filename"`
	CSV      string        `json:"csv"`
	Rows     []assign.Row  `json:"rows"`
	Summary  ExportSummary `json:"summary"`
}
