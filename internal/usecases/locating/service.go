// Package locating resolves a coordinate pair to the nearest catalog
// district by great-circle distance.
package locating

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/280205/Mgnrega-Website/infrastructure/repository"
	"github.com/280205/Mgnrega-Website/internal/domain"
)

var (
	// ErrInvalidCoordinates marks latitude/longitude values outside the
	// valid decimal-degree ranges.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrNoDistricts marks an empty district catalog.
	ErrNoDistricts = errors.New("no districts available")
)

const earthRadiusKM = 6371.0

type Locator interface {
	NearestDistrict(ctx context.Context, lat, lng float64) (*domain.DistrictMatch, error)
}

type Service struct {
	districtRepo repository.DistrictRepository
}

func NewService(districtRepo repository.DistrictRepository) *Service {
	return &Service{
		districtRepo: districtRepo,
	}
}

// NearestDistrict returns the catalog district minimizing great-circle
// distance to (lat, lng). Ties keep the first district in catalog order.
func (s *Service) NearestDistrict(ctx context.Context, lat, lng float64) (*domain.DistrictMatch, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	districts, err := s.districtRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading district catalog")
	}

	if len(districts) == 0 {
		return nil, ErrNoDistricts
	}

	nearest := districts[0]
	minDistance := Haversine(lat, lng, nearest.Latitude, nearest.Longitude)

	for _, district := range districts[1:] {
		distance := Haversine(lat, lng, district.Latitude, district.Longitude)
		if distance < minDistance {
			nearest = district
			minDistance = distance
		}
	}

	return &domain.DistrictMatch{
		District:   nearest,
		DistanceKM: int(math.Round(minDistance)),
	}, nil
}

func validateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return ErrInvalidCoordinates
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidCoordinates
	}

	return nil
}

// Haversine computes the great-circle distance in kilometers between
// two points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
