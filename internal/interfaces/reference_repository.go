// internal/interfaces/reference_repository.go
package interfaces

import "context"

// ReferenceRepository validates the lookups a campaign depends on before
// anything is written.
type ReferenceRepository interface {
	// ResolveChannelCondition returns the id of the reference row for the
	// (channel, recruitment condition) pair. A pair with no row fails with
	// an invalid-reference error.
	ResolveChannelCondition(ctx context.Context, channel int, recruitmentCondition int) (int64, error)

	// VerifyBrandOwnership checks existence and ownership together; a brand
	// owned by another advertiser is indistinguishable from a missing one.
	VerifyBrandOwnership(ctx context.Context, brandID int64, advertiserNo int64) error
}
