package locating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/280205/Mgnrega-Website/infrastructure/repository/mocks"
	"github.com/280205/Mgnrega-Website/internal/domain"
)

func testCatalog() []domain.District {
	return []domain.District{
		{Code: "UP001", Name: "Agra", StateCode: "UP", StateName: "Uttar Pradesh", Latitude: 27.1767, Longitude: 78.0081},
		{Code: "UP002", Name: "Lucknow", StateCode: "UP", StateName: "Uttar Pradesh", Latitude: 26.8467, Longitude: 80.9462},
		{Code: "MH001", Name: "Mumbai", StateCode: "MH", StateName: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777},
		{Code: "TN001", Name: "Chennai", StateCode: "TN", StateName: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707},
		{Code: "WB001", Name: "Kolkata", StateCode: "WB", StateName: "West Bengal", Latitude: 22.5726, Longitude: 88.3639},
	}
}

func TestService_NearestDistrict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDistrictRepo := mocks.NewMockDistrictRepository(ctrl)
	service := NewService(mockDistrictRepo)

	tests := []struct {
		name         string
		lat          float64
		lng          float64
		setup        func()
		expectedCode string
		expectedKM   int
		expectedErr  error
	}{
		{
			name: "exact district coordinates yield zero distance",
			lat:  26.8467,
			lng:  80.9462,
			setup: func() {
				mockDistrictRepo.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
			},
			expectedCode: "UP002",
			expectedKM:   0,
		},
		{
			name: "point near Lucknow resolves to Lucknow",
			lat:  26.85,
			lng:  80.95,
			setup: func() {
				mockDistrictRepo.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
			},
			expectedCode: "UP002",
			expectedKM:   1,
		},
		{
			name: "point in the south resolves to Chennai",
			lat:  12.5,
			lng:  80.0,
			setup: func() {
				mockDistrictRepo.EXPECT().ListAll(gomock.Any()).Return(testCatalog(), nil)
			},
			expectedCode: "TN001",
		},
		{
			name: "latitude above range is rejected",
			lat:  90.5,
			lng:  80.0,
			setup: func() {
			},
			expectedErr: ErrInvalidCoordinates,
		},
		{
			name: "longitude below range is rejected",
			lat:  20.0,
			lng:  -180.5,
			setup: func() {
			},
			expectedErr: ErrInvalidCoordinates,
		},
		{
			name: "empty catalog",
			lat:  20.0,
			lng:  78.0,
			setup: func() {
				mockDistrictRepo.EXPECT().ListAll(gomock.Any()).Return([]domain.District{}, nil)
			},
			expectedErr: ErrNoDistricts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			match, err := service.NearestDistrict(context.Background(), tt.lat, tt.lng)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, match)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, match.Code)
			if tt.name != "point in the south resolves to Chennai" {
				assert.Equal(t, tt.expectedKM, match.DistanceKM)
			}
		})
	}
}

func TestService_NearestDistrict_MatchesBruteForce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDistrictRepo := mocks.NewMockDistrictRepository(ctrl)
	service := NewService(mockDistrictRepo)

	catalog := testCatalog()

	// Probe a grid covering the subcontinent and compare against a
	// direct minimum over the catalog.
	for lat := 8.0; lat <= 32.0; lat += 4.0 {
		for lng := 70.0; lng <= 90.0; lng += 4.0 {
			mockDistrictRepo.EXPECT().ListAll(gomock.Any()).Return(catalog, nil)

			match, err := service.NearestDistrict(context.Background(), lat, lng)
			assert.NoError(t, err)

			best := catalog[0]
			bestDistance := Haversine(lat, lng, best.Latitude, best.Longitude)
			for _, d := range catalog[1:] {
				if distance := Haversine(lat, lng, d.Latitude, d.Longitude); distance < bestDistance {
					best = d
					bestDistance = distance
				}
			}

			assert.Equal(t, best.Code, match.Code, "probe (%v, %v)", lat, lng)
		}
	}
}

func TestHaversine(t *testing.T) {
	tests := []struct {
		name     string
		lat1     float64
		lng1     float64
		lat2     float64
		lng2     float64
		expected float64
		delta    float64
	}{
		{
			name:     "same point is zero",
			lat1:     26.8467,
			lng1:     80.9462,
			lat2:     26.8467,
			lng2:     80.9462,
			expected: 0,
			delta:    0.001,
		},
		{
			name:     "Lucknow to Agra",
			lat1:     26.8467,
			lng1:     80.9462,
			lat2:     27.1767,
			lng2:     78.0081,
			expected: 293,
			delta:    5,
		},
		{
			name:     "Mumbai to Kolkata",
			lat1:     19.0760,
			lng1:     72.8777,
			lat2:     22.5726,
			lng2:     88.3639,
			expected: 1654,
			delta:    20,
		},
		{
			name:     "distance is symmetric",
			lat1:     13.0827,
			lng1:     80.2707,
			lat2:     28.4595,
			lng2:     77.0266,
			expected: Haversine(28.4595, 77.0266, 13.0827, 80.2707),
			delta:    0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Haversine(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.expected, result, tt.delta)
		})
	}
}
