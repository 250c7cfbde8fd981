package datagovclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"

	datagovdomain "github.com/280205/Mgnrega-Website/infrastructure/integrator/datagov/domain"
)

type EmploymentStatisticsParams struct {
	StateName     string
	FinancialYear string
	Limit         int
}

type EmploymentStatisticsResponse struct {
	Records []datagovdomain.EmploymentRecord `json:"records"`
}

func (c *DataGovClient) GetEmploymentStatistics(params EmploymentStatisticsParams) (EmploymentStatisticsResponse, error) {
	var response EmploymentStatisticsResponse

	// Build the request URL.
	endpoint, err := url.Parse(c.config.DataGov.BaseURL)
	if err != nil {
		return response, fmt.Errorf("failed to parse base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.config.DataGov.ResourceID)

	// Region and financial-year filters are applied server-side.
	query := endpoint.Query()
	query.Set("api-key", c.config.DataGov.APIKey)
	query.Set("format", "json")
	query.Set("filters[state_name]", params.StateName)
	query.Set("filters[fin_year]", params.FinancialYear)
	query.Set("limit", strconv.Itoa(params.Limit))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	// The client's 30s timeout bounds the whole call.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("request failed with status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("failed to decode response: %w", err)
	}

	return response, nil
}
