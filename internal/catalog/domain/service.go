package domain

import "errors"

// Catalog is the read-only registry of service tiers.
type Catalog interface {
	// Get returns the tier with the given id.
	Get(id string) (ServiceTier, bool)
	// List returns tiers ordered by popularity rank, declaration order on ties.
	List() []ServiceTier
	// Declared returns tiers in catalog declaration order.
	Declared() []ServiceTier
	// MostPopular returns the tier with the lowest popularity rank.
	MostPopular() ServiceTier
	// Default returns the fallback tier used when a lookup misses.
	Default() ServiceTier
}

var (
	ErrEmptyCatalog      = errors.New("empty_catalog")
	ErrDuplicateTier     = errors.New("duplicate_tier")
	ErrInvalidTierID     = errors.New("invalid_tier_id")
	ErrInvalidHourlyRate = errors.New("invalid_hourly_rate")
	ErrInvalidMileage    = errors.New("invalid_mileage_rate")
	ErrInvalidMinimum    = errors.New("invalid_minimum_hours")
	ErrMissingDefault    = errors.New("missing_default_tier")
)
