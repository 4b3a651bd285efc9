// Package domain holds the link building workflow types
package domain

import "anchors/internal/core/extract"

// State is one user's workflow in progress: a mother document with its mined
// anchors, the daughters linked from it, and the granddaughters linked from
// the daughters. Kept per user with a 24h TTL
type State struct {
	Canonical string `json:"canonical"`

	MotherQuery   string           `json:"mother_query"`
	MotherInBody  bool             `json:"mother_in_body"`
	MotherID      int64            `json:"mother_id"`
	MotherAnchors []extract.Anchor `json:"mother_anchors"`

	DaughterLimit   int                        `json:"daughter_limit"`
	DaughterQuery   string                     `json:"daughter_query"`
	DaughterInBody  bool                       `json:"daughter_in_body"`
	DaughterIDs     []int64                    `json:"daughter_ids"`
	DaughterAnchors map[int64][]extract.Anchor `json:"daughter_anchors"`

	GranddaughterLimit  int     `json:"granddaughter_limit"`
	GranddaughterQuery  string  `json:"granddaughter_query"`
	GranddaughterInBody bool    `json:"granddaughter_in_body"`
	GranddaughterIDs    []int64 `json:"granddaughter_ids"`
}

// NewState returns an empty workflow with the baseline selection limits
func NewState() State {
	return State{
		MotherAnchors:      []extract.Anchor{},
		DaughterLimit:      1,
		DaughterIDs:        []int64{},
		DaughterAnchors:    map[int64][]extract.Anchor{},
		GranddaughterLimit: 1,
		GranddaughterIDs:   []int64{},
	}
}

// AnchorTexts flattens anchors to their display texts in selection order
func AnchorTexts(anchors []extract.Anchor) []string {
	out := make([]string, 0, len(anchors))
	for _, a := range anchors {
		out = append(out, a.Text)
	}
	return out
}
