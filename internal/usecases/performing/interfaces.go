package performing

import (
	"context"

	"github.com/280205/Mgnrega-Website/internal/domain"
)

// PerformanceReader is the cache-aside read surface consumed by the API
// layer. Every method also reports the data provenance tag
// (domain.SourceCache or domain.SourceDatabase).
type PerformanceReader interface {
	// ListDistricts returns the name-ordered districts of a state, or of
	// every state for domain.StateCodeAll.
	ListDistricts(ctx context.Context, stateCode string) ([]domain.District, string, error)

	// CurrentPerformance returns the most recent record of a district.
	CurrentPerformance(ctx context.Context, districtCode string) (*domain.PerformanceRecord, string, error)

	// PerformanceHistory returns up to months records newest-first.
	PerformanceHistory(ctx context.Context, districtCode string, months int) ([]domain.PerformanceRecord, string, error)

	// ComparePerformance pairs the district's latest record with the
	// state average for the same period.
	ComparePerformance(ctx context.Context, districtCode string) (*domain.PerformanceComparison, string, error)
}
