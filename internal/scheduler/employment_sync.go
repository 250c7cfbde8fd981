// Package scheduler contains the recurring synchronization jobs.
package scheduler

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov"
	datagovdomain "github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/domain"
	"github.com/280205/Mgnrega-Website/infrastructure/repository"
	"github.com/280205/Mgnrega-Website/internal/config"
	"github.com/280205/Mgnrega-Website/internal/domain"
	"github.com/280205/Mgnrega-Website/pkg/utils"
)

type EmploymentSyncConfig struct {
	CronSchedule  string
	Enabled       bool
	StateName     string
	FinancialYear string
	RecordLimit   int
}

// EmploymentSyncService pulls MGNREGA statistics from data.gov.in on a
// cron schedule and upserts them into the performance store. When the
// upstream call fails it generates mock data instead, so the dashboard
// never renders an empty state.
type EmploymentSyncService struct {
	scheduler           *gocron.Scheduler
	config              EmploymentSyncConfig
	districtRepo        repository.DistrictRepository
	performanceRepo     repository.PerformanceRepository
	syncLogRepo         repository.SyncLogRepository
	integrator          datagov.EmploymentIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time

	// injected clock, fixed in tests
	now func() time.Time
}

func NewEmploymentSyncService(
	districtRepo repository.DistrictRepository,
	performanceRepo repository.PerformanceRepository,
	syncLogRepo repository.SyncLogRepository,
	integrator datagov.EmploymentIntegrator,
	cfg *config.Config,
) *EmploymentSyncService {
	syncConfig := EmploymentSyncConfig{
		CronSchedule:  cfg.EmploymentSync.CronSchedule,
		Enabled:       cfg.EmploymentSync.Enabled,
		StateName:     cfg.EmploymentSync.StateName,
		FinancialYear: cfg.EmploymentSync.FinancialYear,
		RecordLimit:   cfg.EmploymentSync.RecordLimit,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"state_name":     syncConfig.StateName,
		"financial_year": syncConfig.FinancialYear,
		"record_limit":   syncConfig.RecordLimit,
		"sync_enabled":   syncConfig.Enabled,
	}).Info("employment sync scheduler configuration loaded")

	return &EmploymentSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		districtRepo:    districtRepo,
		performanceRepo: performanceRepo,
		syncLogRepo:     syncLogRepo,
		integrator:      integrator,
		syncRunning:     false,
		now:             time.Now,
	}
}

// Start registers the cron job and runs the scheduler until ctx is done.
func (s *EmploymentSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("employment sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting employment sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncNow(); err != nil {
			logrus.WithError(err).Error("scheduled employment sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule employment sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping employment sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the sync in the background, for the manual
// trigger endpoint.
func (s *EmploymentSyncService) TriggerManualSync() {
	go func() {
		if err := s.SyncNow(); err != nil {
			logrus.WithError(err).Error("manual employment sync failed")
		}
	}()
}

// IsRunning reports whether a sync is currently executing.
func (s *EmploymentSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// RecentRuns returns the latest audit-trail entries.
func (s *EmploymentSyncService) RecentRuns(ctx context.Context, limit int) ([]domain.SyncLogEntry, error) {
	return s.syncLogRepo.LatestRuns(ctx, limit)
}

// SyncNow is the scheduling-free job entry point. A call while another
// sync is running is a logged no-op; at most one sync executes at a time.
func (s *EmploymentSyncService) SyncNow() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("employment sync already in progress, skipping")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"run_id":         runID,
		"state_name":     s.config.StateName,
		"financial_year": s.config.FinancialYear,
	})

	ctx := context.Background()

	syncID, err := s.syncLogRepo.Create(ctx, domain.SyncTypeEmployment)
	if err != nil {
		logger.WithError(err).Error("failed to create sync log entry")
		return err
	}

	logger.Info("starting employment data sync from data.gov.in")

	records, err := s.integrator.FetchMonthlyStatistics(
		s.config.StateName,
		s.config.FinancialYear,
		s.config.RecordLimit,
	)
	if err != nil {
		message := err.Error()
		if logErr := s.syncLogRepo.Complete(ctx, syncID, domain.SyncStatusFailed, 0, &message); logErr != nil {
			logger.WithError(logErr).Error("failed to mark sync log entry as failed")
		}

		logger.WithError(err).Error("employment sync failed, falling back to mock data")
		s.generateMockData(ctx, logger)
		return nil
	}

	logger.WithField("records_fetched", len(records)).Info("fetched records from data.gov.in")

	recordsProcessed := 0
	for _, upstream := range records {
		record := s.mapRecord(upstream)

		if err := s.performanceRepo.Upsert(ctx, record); err != nil {
			// One bad record never aborts the batch.
			logger.WithError(err).WithFields(logrus.Fields{
				"district_code": record.DistrictCode,
				"year":          record.Year,
				"month":         record.Month,
			}).Error("failed to upsert performance record, skipping")
			continue
		}

		recordsProcessed++
	}

	if err := s.syncLogRepo.Complete(ctx, syncID, domain.SyncStatusSuccess, recordsProcessed, nil); err != nil {
		logger.WithError(err).Error("failed to mark sync log entry as successful")
	}

	logger.WithField("records_processed", recordsProcessed).Info("employment sync completed")

	return nil
}

var financialYearPattern = regexp.MustCompile(`(\d{4})-\d{4}`)

// mapRecord translates an upstream row into the performance schema.
func (s *EmploymentSyncService) mapRecord(upstream datagovdomain.EmploymentRecord) *domain.PerformanceRecord {
	districtCode := upstream.DistrictCode
	if districtCode == "" {
		districtCode = "UNKNOWN"
	}

	return &domain.PerformanceRecord{
		DistrictCode:        districtCode,
		Year:                s.parseFinancialYear(upstream.FinancialYear),
		Month:               s.parseMonth(upstream.Month),
		PersonDaysGenerated: upstream.PersonDays.Int(),
		EmploymentProvided:  upstream.IndividualsWork.Int(),
		ActiveJobCards:      upstream.ActiveJobCards.Int(),
		TotalHouseholds:     upstream.HouseholdsWork.Int(),
		WomenPersondays:     upstream.WomenPersondays.Int(),
		SCPersondays:        upstream.SCPersondays.Int(),
		STPersondays:        upstream.STPersondays.Int(),
		AverageWage:         upstream.AverageWageRate.Float(),
		TotalExpenditure:    upstream.TotalExp.Float(),
		WageExpenditure:     upstream.Wages.Float(),
		MaterialExpenditure: upstream.MaterialWages.Float(),
		WorksCompleted:      int(upstream.CompletedWorks.Int()),
		WorksOngoing:        int(upstream.OngoingWorks.Int()),
	}
}

// parseFinancialYear keeps the first year of a "YYYY-YYYY" fiscal span,
// defaulting to the current calendar year.
func (s *EmploymentSyncService) parseFinancialYear(financialYear string) int {
	match := financialYearPattern.FindStringSubmatch(financialYear)
	if match == nil {
		return s.now().Year()
	}

	var year int
	fmt.Sscanf(match[1], "%d", &year)
	return year
}

var monthsByName = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// parseMonth maps a three-letter month abbreviation to its number,
// defaulting to the current calendar month.
func (s *EmploymentSyncService) parseMonth(monthName string) int {
	if month, ok := monthsByName[monthName]; ok {
		return month
	}

	return int(s.now().Month())
}
