package datagovclient

import (
	"net/http"
	"time"

	"github.com/280205/Mgnrega-Website/internal/config"
)

type Client interface {
	GetEmploymentStatistics(params EmploymentStatisticsParams) (EmploymentStatisticsResponse, error)
}

type DataGovClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient builds an API client for data.gov.in resources.
func NewClient(cfg *config.Config) Client {
	return &DataGovClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
