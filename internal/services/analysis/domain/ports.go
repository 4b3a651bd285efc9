// Package domain holds analysis ports shared across modules
package domain

import (
	"context"

	"anchors/internal/core/cannibal"
)

// ProfilesPort builds and caches per-document comparison profiles
type ProfilesPort interface {
	// Profile returns the comparison profile for a published document,
	// computing and caching it on first use
	Profile(ctx context.Context, id int64) (cannibal.DocProfile, error)
}
