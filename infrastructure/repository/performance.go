package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/internal/domain"
	"github.com/280205/Mgnrega-Website/pkg/utils"
)

const performanceColumns = `p.id, p.district_code, p.year, p.month,
	p.person_days_generated, p.employment_provided, p.active_job_cards, p.total_households,
	p.women_persondays, p.sc_persondays, p.st_persondays,
	p.average_wage, p.total_expenditure, p.wage_expenditure, p.material_expenditure,
	p.works_completed, p.works_ongoing, p.updated_at,
	d.name, d.state_code`

type PerformanceRepository interface {
	// Latest returns the most recent record of a district, nil when the
	// district has no rows.
	Latest(ctx context.Context, districtCode string) (*domain.PerformanceRecord, error)

	// History returns up to months records newest-first.
	History(ctx context.Context, districtCode string, months int) ([]domain.PerformanceRecord, error)

	// StateAverage aggregates all districts of a state for one year/month.
	// Missing sibling rows leave the averages at zero.
	StateAverage(ctx context.Context, stateCode string, year, month int) (*domain.StateAverage, error)

	// Upsert inserts a record or fully replaces the measures of the row
	// sharing its (district_code, year, month) key.
	Upsert(ctx context.Context, record *domain.PerformanceRecord) error
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

func (r *performanceRepository) Latest(ctx context.Context, districtCode string) (*domain.PerformanceRecord, error) {
	query, args, err := squirrel.
		Select(performanceColumns).
		From("performance p").
		Join("districts d ON p.district_code = d.code").
		Where(squirrel.Eq{"p.district_code": districtCode}).
		OrderBy("p.year DESC", "p.month DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest performance query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	record, err := scanPerformanceRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan performance record: %w", err)
	}

	return record, nil
}

func (r *performanceRepository) History(ctx context.Context, districtCode string, months int) ([]domain.PerformanceRecord, error) {
	query, args, err := squirrel.
		Select(performanceColumns).
		From("performance p").
		Join("districts d ON p.district_code = d.code").
		Where(squirrel.Eq{"p.district_code": districtCode}).
		OrderBy("p.year DESC", "p.month DESC").
		Limit(uint64(months)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build performance history query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PerformanceRecord, 0)
	for rows.Next() {
		record, err := scanPerformanceRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance record: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during performance row iteration: %w", err)
	}

	return records, nil
}

func (r *performanceRepository) StateAverage(ctx context.Context, stateCode string, year, month int) (*domain.StateAverage, error) {
	query, args, err := squirrel.
		Select(
			"AVG(p.person_days_generated)",
			"AVG(p.employment_provided)",
			"AVG(p.active_job_cards)",
			"AVG(p.average_wage)",
			"COUNT(*)",
		).
		From("performance p").
		Join("districts d ON p.district_code = d.code").
		Where(squirrel.Eq{"d.state_code": stateCode, "p.year": year, "p.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build state average query: %w", err)
	}

	var (
		avgPersonDays sql.NullFloat64
		avgEmployment sql.NullFloat64
		avgJobCards   sql.NullFloat64
		avgWage       sql.NullFloat64
		count         int
	)

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&avgPersonDays, &avgEmployment, &avgJobCards, &avgWage, &count); err != nil {
		return nil, fmt.Errorf("failed to scan state average: %w", err)
	}

	// AVG over zero rows yields NULL; leave the zero values in place.
	return &domain.StateAverage{
		AvgPersonDays:  utils.RoundWithTwoDecimalPlace(avgPersonDays.Float64),
		AvgEmployment:  utils.RoundWithTwoDecimalPlace(avgEmployment.Float64),
		AvgJobCards:    utils.RoundWithTwoDecimalPlace(avgJobCards.Float64),
		AvgWage:        utils.RoundWithTwoDecimalPlace(avgWage.Float64),
		DistrictsCount: count,
	}, nil
}

func (r *performanceRepository) Upsert(ctx context.Context, record *domain.PerformanceRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("performance").
		Columns(
			"district_code", "year", "month",
			"person_days_generated", "employment_provided", "active_job_cards", "total_households",
			"women_persondays", "sc_persondays", "st_persondays",
			"average_wage", "total_expenditure", "wage_expenditure", "material_expenditure",
			"works_completed", "works_ongoing",
		).
		Values(
			record.DistrictCode, record.Year, record.Month,
			record.PersonDaysGenerated, record.EmploymentProvided, record.ActiveJobCards, record.TotalHouseholds,
			record.WomenPersondays, record.SCPersondays, record.STPersondays,
			record.AverageWage, record.TotalExpenditure, record.WageExpenditure, record.MaterialExpenditure,
			record.WorksCompleted, record.WorksOngoing,
		).
		Suffix(`
			ON CONFLICT (district_code, year, month) DO UPDATE SET
				person_days_generated = EXCLUDED.person_days_generated,
				employment_provided = EXCLUDED.employment_provided,
				active_job_cards = EXCLUDED.active_job_cards,
				total_households = EXCLUDED.total_households,
				women_persondays = EXCLUDED.women_persondays,
				sc_persondays = EXCLUDED.sc_persondays,
				st_persondays = EXCLUDED.st_persondays,
				average_wage = EXCLUDED.average_wage,
				total_expenditure = EXCLUDED.total_expenditure,
				wage_expenditure = EXCLUDED.wage_expenditure,
				material_expenditure = EXCLUDED.material_expenditure,
				works_completed = EXCLUDED.works_completed,
				works_ongoing = EXCLUDED.works_ongoing,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build performance upsert: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute performance upsert: %w", err)
	}

	return nil
}

func scanPerformanceRow(row *sql.Row) (*domain.PerformanceRecord, error) {
	record := &domain.PerformanceRecord{}

	err := row.Scan(
		&record.ID,
		&record.DistrictCode,
		&record.Year,
		&record.Month,
		&record.PersonDaysGenerated,
		&record.EmploymentProvided,
		&record.ActiveJobCards,
		&record.TotalHouseholds,
		&record.WomenPersondays,
		&record.SCPersondays,
		&record.STPersondays,
		&record.AverageWage,
		&record.TotalExpenditure,
		&record.WageExpenditure,
		&record.MaterialExpenditure,
		&record.WorksCompleted,
		&record.WorksOngoing,
		&record.UpdatedAt,
		&record.DistrictName,
		&record.StateCode,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func scanPerformanceRows(rows *sql.Rows) (*domain.PerformanceRecord, error) {
	record := &domain.PerformanceRecord{}

	err := rows.Scan(
		&record.ID,
		&record.DistrictCode,
		&record.Year,
		&record.Month,
		&record.PersonDaysGenerated,
		&record.EmploymentProvided,
		&record.ActiveJobCards,
		&record.TotalHouseholds,
		&record.WomenPersondays,
		&record.SCPersondays,
		&record.STPersondays,
		&record.AverageWage,
		&record.TotalExpenditure,
		&record.WageExpenditure,
		&record.MaterialExpenditure,
		&record.WorksCompleted,
		&record.WorksOngoing,
		&record.UpdatedAt,
		&record.DistrictName,
		&record.StateCode,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
