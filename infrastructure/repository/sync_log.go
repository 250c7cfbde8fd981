package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/280205/Mgnrega-Website/infrastructure/database/postgres"
	"github.com/280205/Mgnrega-Website/internal/domain"
)

type SyncLogRepository interface {
	// Create appends a running entry and returns its id.
	Create(ctx context.Context, syncType string) (int64, error)

	// Complete performs the single status transition of an entry.
	Complete(ctx context.Context, id int64, status string, recordsProcessed int, errorMessage *string) error

	// LatestRuns returns the most recent entries newest-first.
	LatestRuns(ctx context.Context, limit int) ([]domain.SyncLogEntry, error)
}

type syncLogRepository struct {
	conn *postgres.Connection
}

func NewSyncLogRepository(conn *postgres.Connection) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

func (r *syncLogRepository) Create(ctx context.Context, syncType string) (int64, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("sync_log").
		Columns("sync_type", "status", "started_at").
		Values(syncType, domain.SyncStatusRunning, squirrel.Expr("NOW()")).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sync log insert: %w", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert sync log entry: %w", err)
	}

	return id, nil
}

func (r *syncLogRepository) Complete(ctx context.Context, id int64, status string, recordsProcessed int, errorMessage *string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("sync_log").
		Set("status", status).
		Set("records_processed", recordsProcessed).
		Set("error_message", errorMessage).
		Set("completed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sync log update: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update sync log entry: %w", err)
	}

	return nil
}

func (r *syncLogRepository) LatestRuns(ctx context.Context, limit int) ([]domain.SyncLogEntry, error) {
	query, args, err := squirrel.
		Select("id, sync_type, status, records_processed, error_message, started_at, completed_at").
		From("sync_log").
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sync log query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync log: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SyncLogEntry, 0)
	for rows.Next() {
		entry := domain.SyncLogEntry{}
		var records sql.NullInt64
		var errorMessage sql.NullString
		var completedAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.SyncType,
			&entry.Status,
			&records,
			&errorMessage,
			&entry.StartedAt,
			&completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync log entry: %w", err)
		}

		entry.RecordsProcessed = int(records.Int64)
		if errorMessage.Valid {
			entry.ErrorMessage = &errorMessage.String
		}
		if completedAt.Valid {
			entry.CompletedAt = &completedAt.Time
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed during sync log row iteration: %w", err)
	}

	return entries, nil
}
