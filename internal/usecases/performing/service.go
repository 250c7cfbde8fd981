package performing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/280205/Mgnrega-Website/infrastructure/cache"
	"github.com/280205/Mgnrega-Website/infrastructure/repository"
	"github.com/280205/Mgnrega-Website/internal/domain"
	"github.com/280205/Mgnrega-Website/pkg/log"
)

// ErrNoPerformanceData marks a district with no performance rows at all.
var ErrNoPerformanceData = errors.New("no performance data found for district")

// DefaultHistoryMonths is used when the history request omits months.
const DefaultHistoryMonths = 12

// TTLs per query type. District reference data barely changes; current
// figures refresh with the sync job's cadence.
const (
	districtListTTL = 24 * time.Hour
	currentTTL      = 6 * time.Hour
	historyTTL      = 12 * time.Hour
	compareTTL      = 12 * time.Hour
)

type Service struct {
	districtRepo    repository.DistrictRepository
	performanceRepo repository.PerformanceRepository
	cache           cache.Cache
}

func NewService(
	districtRepo repository.DistrictRepository,
	performanceRepo repository.PerformanceRepository,
	cacheClient cache.Cache,
) PerformanceReader {
	return &Service{
		districtRepo:    districtRepo,
		performanceRepo: performanceRepo,
		cache:           cacheClient,
	}
}

func (s *Service) ListDistricts(ctx context.Context, stateCode string) ([]domain.District, string, error) {
	cacheKey := fmt.Sprintf("districts:%s", stateCode)

	var cached []domain.District
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return cached, domain.SourceCache, nil
	}

	districts, err := s.districtRepo.ListByState(ctx, stateCode)
	if err != nil {
		return nil, "", errors.Wrap(err, "listing districts")
	}

	s.cacheStore(ctx, cacheKey, districts, districtListTTL)

	return districts, domain.SourceDatabase, nil
}

func (s *Service) CurrentPerformance(ctx context.Context, districtCode string) (*domain.PerformanceRecord, string, error) {
	cacheKey := fmt.Sprintf("performance:current:%s", districtCode)

	var cached domain.PerformanceRecord
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, domain.SourceCache, nil
	}

	record, err := s.performanceRepo.Latest(ctx, districtCode)
	if err != nil {
		return nil, "", errors.Wrap(err, "fetching current performance")
	}

	if record == nil {
		return nil, "", ErrNoPerformanceData
	}

	s.cacheStore(ctx, cacheKey, record, currentTTL)

	return record, domain.SourceDatabase, nil
}

func (s *Service) PerformanceHistory(ctx context.Context, districtCode string, months int) ([]domain.PerformanceRecord, string, error) {
	if months <= 0 {
		months = DefaultHistoryMonths
	}

	cacheKey := fmt.Sprintf("performance:history:%s:%d", districtCode, months)

	var cached []domain.PerformanceRecord
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return cached, domain.SourceCache, nil
	}

	records, err := s.performanceRepo.History(ctx, districtCode, months)
	if err != nil {
		return nil, "", errors.Wrap(err, "fetching performance history")
	}

	s.cacheStore(ctx, cacheKey, records, historyTTL)

	return records, domain.SourceDatabase, nil
}

func (s *Service) ComparePerformance(ctx context.Context, districtCode string) (*domain.PerformanceComparison, string, error) {
	cacheKey := fmt.Sprintf("performance:compare:%s", districtCode)

	var cached domain.PerformanceComparison
	if s.cacheLookup(ctx, cacheKey, &cached) {
		return &cached, domain.SourceCache, nil
	}

	record, err := s.performanceRepo.Latest(ctx, districtCode)
	if err != nil {
		return nil, "", errors.Wrap(err, "fetching district performance for comparison")
	}

	if record == nil {
		return nil, "", ErrNoPerformanceData
	}

	// The state average covers the exact year/month of the district's
	// latest record; states without sibling rows average to zero.
	stateAverage, err := s.performanceRepo.StateAverage(ctx, record.StateCode, record.Year, record.Month)
	if err != nil {
		return nil, "", errors.Wrap(err, "fetching state average")
	}

	comparison := &domain.PerformanceComparison{
		District:     record,
		StateAverage: stateAverage,
	}

	s.cacheStore(ctx, cacheKey, comparison, compareTTL)

	return comparison, domain.SourceDatabase, nil
}

// cacheLookup deserializes the cached payload into target, reporting a
// hit. Cache failures count as misses.
func (s *Service) cacheLookup(ctx context.Context, key string, target any) bool {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.ForContext(ctx).WithError(err).WithField("cache_key", key).Warn("cache read failed, falling back to database")
		}
		return false
	}

	if err := json.Unmarshal([]byte(payload), target); err != nil {
		log.ForContext(ctx).WithError(err).WithField("cache_key", key).Warn("cache payload corrupt, falling back to database")
		return false
	}

	return true
}

// cacheStore is best-effort: a failed write never fails the read.
func (s *Service) cacheStore(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("cache_key", key).Warn("failed to serialize cache payload")
		return
	}

	if err := s.cache.Set(ctx, key, string(payload), ttl); err != nil {
		log.ForContext(ctx).WithError(err).WithField("cache_key", key).Warn("cache write failed")
	}
}
