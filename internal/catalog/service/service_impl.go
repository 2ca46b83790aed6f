package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/armora/quote/internal/catalog/domain"
	"go.uber.org/zap"
)

// Catalog is an immutable in-memory tier registry.
type Catalog struct {
	declared []domain.ServiceTier
	ranked   []domain.ServiceTier
	byID     map[string]int
	def      int
}

// New validates tiers and builds the catalog. The declaration order of tiers
// is preserved for lookups and tie-breaks.
func New(tiers []domain.ServiceTier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	declared := make([]domain.ServiceTier, 0, len(tiers))
	byID := make(map[string]int, len(tiers))
	for _, t := range tiers {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, domain.ErrInvalidTierID
		}
		if _, exists := byID[id]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateTier, id)
		}
		if !t.HourlyRate.IsPositive() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidHourlyRate, id)
		}
		if t.MileageRate.IsNegative() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMileage, id)
		}
		if t.MinimumHours.IsNegative() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMinimum, id)
		}
		t.ID = id
		t.TargetProfiles = append([]string(nil), t.TargetProfiles...)
		byID[id] = len(declared)
		declared = append(declared, t)
	}

	def, ok := byID[domain.DefaultTierID]
	if !ok {
		return nil, domain.ErrMissingDefault
	}

	ranked := append([]domain.ServiceTier(nil), declared...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PopularityRank < ranked[j].PopularityRank
	})

	return &Catalog{
		declared: declared,
		ranked:   ranked,
		byID:     byID,
		def:      def,
	}, nil
}

// Provide builds the compiled-in catalog for fx.
func Provide(log *zap.Logger) (domain.Catalog, error) {
	c, err := New(DefaultTiers())
	if err != nil {
		return nil, err
	}
	log.Named("catalog").Debug("service catalog loaded", zap.Int("tiers", len(c.declared)))
	return c, nil
}

func (c *Catalog) Get(id string) (domain.ServiceTier, bool) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.ServiceTier{}, false
	}
	return cloneTier(c.declared[idx]), true
}

func (c *Catalog) List() []domain.ServiceTier {
	return cloneTiers(c.ranked)
}

func (c *Catalog) Declared() []domain.ServiceTier {
	return cloneTiers(c.declared)
}

func (c *Catalog) MostPopular() domain.ServiceTier {
	return cloneTier(c.ranked[0])
}

func (c *Catalog) Default() domain.ServiceTier {
	return cloneTier(c.declared[c.def])
}

// cloneTier copies the only mutable field so callers cannot edit the catalog.
func cloneTier(t domain.ServiceTier) domain.ServiceTier {
	t.TargetProfiles = append([]string(nil), t.TargetProfiles...)
	return t
}

func cloneTiers(tiers []domain.ServiceTier) []domain.ServiceTier {
	out := make([]domain.ServiceTier, len(tiers))
	for i, t := range tiers {
		out[i] = cloneTier(t)
	}
	return out
}
