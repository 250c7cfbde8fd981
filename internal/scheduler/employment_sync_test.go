package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	datagovdomain "github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/domain"
	datagovmocks "github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/mocks"
	"github.com/280205/Mgnrega-Website/infrastructure/repository/mocks"
	"github.com/280205/Mgnrega-Website/internal/domain"
)

func newTestSyncService(
	districtRepo *mocks.MockDistrictRepository,
	performanceRepo *mocks.MockPerformanceRepository,
	syncLogRepo *mocks.MockSyncLogRepository,
	integrator *datagovmocks.MockEmploymentIntegrator,
) *EmploymentSyncService {
	return &EmploymentSyncService{
		config: EmploymentSyncConfig{
			CronSchedule:  "0 */6 * * *",
			Enabled:       true,
			StateName:     "UTTAR PRADESH",
			FinancialYear: "2025-2026",
			RecordLimit:   1000,
		},
		districtRepo:    districtRepo,
		performanceRepo: performanceRepo,
		syncLogRepo:     syncLogRepo,
		integrator:      integrator,
		now: func() time.Time {
			return time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
		},
	}
}

func upstreamRecord(districtCode string) datagovdomain.EmploymentRecord {
	return datagovdomain.EmploymentRecord{
		DistrictCode:    districtCode,
		DistrictName:    "Lucknow",
		StateName:       "UTTAR PRADESH",
		FinancialYear:   "2025-2026",
		Month:           "Jul",
		PersonDays:      "250000",
		IndividualsWork: "8000",
		ActiveJobCards:  "40000",
		HouseholdsWork:  "55000",
		WomenPersondays: "120000",
		SCPersondays:    "70000",
		STPersondays:    "45000",
		AverageWageRate: "210.50",
		TotalExp:        "9000000",
		Wages:           "6500000",
		MaterialWages:   "2500000",
		CompletedWorks:  "320",
		OngoingWorks:    "180",
	}
}

func TestEmploymentSyncService_SyncNow_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDistrictRepo := mocks.NewMockDistrictRepository(ctrl)
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockIntegrator := datagovmocks.NewMockEmploymentIntegrator(ctrl)

	service := newTestSyncService(mockDistrictRepo, mockPerformanceRepo, mockSyncLogRepo, mockIntegrator)

	mockSyncLogRepo.EXPECT().Create(gomock.Any(), domain.SyncTypeEmployment).Return(int64(7), nil)

	mockIntegrator.EXPECT().
		FetchMonthlyStatistics("UTTAR PRADESH", "2025-2026", 1000).
		Return([]datagovdomain.EmploymentRecord{
			upstreamRecord("UP001"),
			upstreamRecord("UP002"),
		}, nil)

	var upserted []*domain.PerformanceRecord
	mockPerformanceRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, record *domain.PerformanceRecord) error {
			upserted = append(upserted, record)
			return nil
		}).Times(2)

	mockSyncLogRepo.EXPECT().Complete(gomock.Any(), int64(7), domain.SyncStatusSuccess, 2, nil).Return(nil)

	err := service.SyncNow()

	assert.NoError(t, err)
	assert.Len(t, upserted, 2)
	assert.Equal(t, "UP001", upserted[0].DistrictCode)
	assert.Equal(t, 2025, upserted[0].Year)
	assert.Equal(t, 7, upserted[0].Month)
	assert.Equal(t, int64(250000), upserted[0].PersonDaysGenerated)
	assert.Equal(t, int64(8000), upserted[0].EmploymentProvided)
	assert.Equal(t, 210.50, upserted[0].AverageWage)
	assert.Equal(t, 320, upserted[0].WorksCompleted)
	assert.False(t, service.IsRunning())
}

func TestEmploymentSyncService_SyncNow_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDistrictRepo := mocks.NewMockDistrictRepository(ctrl)
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockIntegrator := datagovmocks.NewMockEmploymentIntegrator(ctrl)

	service := newTestSyncService(mockDistrictRepo, mockPerformanceRepo, mockSyncLogRepo, mockIntegrator)
	service.syncRunning = true

	// No repository or integrator calls expected at all.
	err := service.SyncNow()

	assert.NoError(t, err)
	assert.True(t, service.IsRunning())
}

func TestEmploymentSyncService_SyncNow_BadRecordSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDistrictRepo := mocks.NewMockDistrictRepository(ctrl)
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockIntegrator := datagovmocks.NewMockEmploymentIntegrator(ctrl)

	service := newTestSyncService(mockDistrictRepo, mockPerformanceRepo, mockSyncLogRepo, mockIntegrator)

	mockSyncLogRepo.EXPECT().Create(gomock.Any(), domain.SyncTypeEmployment).Return(int64(8), nil)

	mockIntegrator.EXPECT().
		FetchMonthlyStatistics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]datagovdomain.EmploymentRecord{
			upstreamRecord("UP001"),
			upstreamRecord("UP002"),
			upstreamRecord("UP003"),
		}, nil)

	gomock.InOrder(
		mockPerformanceRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
		mockPerformanceRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("constraint violation")),
		mockPerformanceRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
	)

	// Only the two successful upserts count.
	mockSyncLogRepo.EXPECT().Complete(gomock.Any(), int64(8), domain.SyncStatusSuccess, 2, nil).Return(nil)

	err := service.SyncNow()

	assert.NoError(t, err)
}

func TestEmploymentSyncService_SyncNow_UpstreamFailureFallsBackToMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDistrictRepo := mocks.NewMockDistrictRepository(ctrl)
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockSyncLogRepo := mocks.NewMockSyncLogRepository(ctrl)
	mockIntegrator := datagovmocks.NewMockEmploymentIntegrator(ctrl)

	service := newTestSyncService(mockDistrictRepo, mockPerformanceRepo, mockSyncLogRepo, mockIntegrator)

	mockSyncLogRepo.EXPECT().Create(gomock.Any(), domain.SyncTypeEmployment).Return(int64(9), nil)

	mockIntegrator.EXPECT().
		FetchMonthlyStatistics(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("upstream timeout"))

	// The audit entry records the failure before the fallback runs.
	mockSyncLogRepo.EXPECT().
		Complete(gomock.Any(), int64(9), domain.SyncStatusFailed, 0, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ int64, _ string, _ int, message *string) error {
			assert.NotNil(t, message)
			assert.Contains(t, *message, "upstream timeout")
			return nil
		})

	districts := []domain.District{
		{Code: "UP001", Name: "Agra", StateCode: "UP"},
		{Code: "UP002", Name: "Lucknow", StateCode: "UP"},
	}
	mockDistrictRepo.EXPECT().ListAll(gomock.Any()).Return(districts, nil)

	var generated []*domain.PerformanceRecord
	mockPerformanceRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, record *domain.PerformanceRecord) error {
			generated = append(generated, record)
			return nil
		}).Times(len(districts) * mockTrailingMonths)

	err := service.SyncNow()

	assert.NoError(t, err)
	assert.Len(t, generated, 24)

	perDistrict := map[string]int{}
	for _, record := range generated {
		perDistrict[record.DistrictCode]++

		assert.GreaterOrEqual(t, record.PersonDaysGenerated, int64(mockPersonDaysMin))
		assert.Less(t, record.PersonDaysGenerated, int64(mockPersonDaysMax))
		assert.GreaterOrEqual(t, record.EmploymentProvided, int64(mockEmploymentMin))
		assert.Less(t, record.EmploymentProvided, int64(mockEmploymentMax))
		assert.GreaterOrEqual(t, record.ActiveJobCards, int64(mockJobCardsMin))
		assert.Less(t, record.ActiveJobCards, int64(mockJobCardsMax))
		assert.GreaterOrEqual(t, record.AverageWage, mockWageMin)
		assert.Less(t, record.AverageWage, mockWageMax)
		assert.GreaterOrEqual(t, record.TotalExpenditure, mockTotalExpMin)
		assert.Less(t, record.TotalExpenditure, mockTotalExpMax)
		assert.GreaterOrEqual(t, record.WorksCompleted, mockWorksCompletedMin)
		assert.Less(t, record.WorksCompleted, mockWorksCompletedMax)
	}

	// Twelve trailing months per district, walking back from August 2025.
	assert.Equal(t, 12, perDistrict["UP001"])
	assert.Equal(t, 12, perDistrict["UP002"])

	first := generated[0]
	assert.Equal(t, 2025, first.Year)
	assert.Equal(t, 8, first.Month)

	last := generated[11]
	assert.Equal(t, 2024, last.Year)
	assert.Equal(t, 9, last.Month)
}

func TestEmploymentSyncService_ParseFinancialYear(t *testing.T) {
	service := &EmploymentSyncService{
		now: func() time.Time {
			return time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
		},
	}

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "fiscal span keeps the first year",
			input:    "2024-2025",
			expected: 2024,
		},
		{
			name:     "another span",
			input:    "2025-2026",
			expected: 2025,
		},
		{
			name:     "empty defaults to the current year",
			input:    "",
			expected: 2025,
		},
		{
			name:     "garbage defaults to the current year",
			input:    "FY-twentyfour",
			expected: 2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.parseFinancialYear(tt.input))
		})
	}
}

func TestEmploymentSyncService_ParseMonth(t *testing.T) {
	service := &EmploymentSyncService{
		now: func() time.Time {
			return time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
		},
	}

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "January",
			input:    "Jan",
			expected: 1,
		},
		{
			name:     "December",
			input:    "Dec",
			expected: 12,
		},
		{
			name:     "unknown name defaults to the current month",
			input:    "Janvier",
			expected: 8,
		},
		{
			name:     "empty defaults to the current month",
			input:    "",
			expected: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.parseMonth(tt.input))
		})
	}
}

func TestEmploymentSyncService_MapRecord_MissingDistrictCode(t *testing.T) {
	service := &EmploymentSyncService{
		now: func() time.Time {
			return time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
		},
	}

	upstream := upstreamRecord("")
	record := service.mapRecord(upstream)

	assert.Equal(t, "UNKNOWN", record.DistrictCode)
}
