package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/internal/domain"
)

const districtColumns = "d.code, d.name, d.state_code, d.state_name, d.latitude, d.longitude"

type DistrictRepository interface {
	// ListByState returns the districts of one state ordered by name,
	// or every district when stateCode is domain.StateCodeAll.
	ListByState(ctx context.Context, stateCode string) ([]domain.District, error)

	// ListAll returns the whole catalog in stable code order.
	ListAll(ctx context.Context) ([]domain.District, error)
}

type districtRepository struct {
	conn *postgres.Connection
}

func NewDistrictRepository(conn *postgres.Connection) DistrictRepository {
	return &districtRepository{
		conn: conn,
	}
}

func (r *districtRepository) ListByState(ctx context.Context, stateCode string) ([]domain.District, error) {
	builder := squirrel.
		Select(districtColumns).
		From("districts d").
		OrderBy("d.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if stateCode != domain.StateCodeAll {
		builder = builder.Where(squirrel.Eq{"d.state_code": stateCode})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build districts query: %w", err)
	}

	return r.queryDistricts(ctx, query, args)
}

func (r *districtRepository) ListAll(ctx context.Context) ([]domain.District, error) {
	query, args, err := squirrel.
		Select(districtColumns).
		From("districts d").
		OrderBy("d.code ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build districts query: %w", err)
	}

	return r.queryDistricts(ctx, query, args)
}

func (r *districtRepository) queryDistricts(ctx context.Context, query string, args []interface{}) ([]domain.District, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer rows.Close()

	districts := make([]domain.District, 0)
	for rows.Next() {
		district, err := scanDistrict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, district)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during district row iteration: %w", err)
	}

	return districts, nil
}

func scanDistrict(rows *sql.Rows) (domain.District, error) {
	district := domain.District{}

	err := rows.Scan(
		&district.Code,
		&district.Name,
		&district.StateCode,
		&district.StateName,
		&district.Latitude,
		&district.Longitude,
	)
	if err != nil {
		return domain.District{}, err
	}

	return district, nil
}
