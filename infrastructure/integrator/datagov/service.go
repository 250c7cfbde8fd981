package datagov

import (
	"github.com/pkg/errors"

	"github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/datagovclient"
	datagovdomain "github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/domain"
	"github.com/280205/Mgnrega-Website/internal/config"
)

type EmploymentIntegrator interface {
	// FetchMonthlyStatistics pulls the district-month rows matching the
	// state and financial-year filters, capped at limit records.
	FetchMonthlyStatistics(stateName, financialYear string, limit int) ([]datagovdomain.EmploymentRecord, error)
}

type DataGovService struct {
	cfg    *config.Config
	Client datagovclient.Client
}

func New(cfg *config.Config, client datagovclient.Client) EmploymentIntegrator {
	return &DataGovService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DataGovService) FetchMonthlyStatistics(stateName, financialYear string, limit int) ([]datagovdomain.EmploymentRecord, error) {
	resp, err := s.Client.GetEmploymentStatistics(datagovclient.EmploymentStatisticsParams{
		StateName:     stateName,
		FinancialYear: financialYear,
		Limit:         limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetching employment statistics from data.gov.in")
	}

	return resp.Records, nil
}
