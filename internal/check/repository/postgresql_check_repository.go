// Package repository implements data persistence for check records.
// Repositories support both PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"time"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
	"github.com/allisson/cardcheck/internal/database"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// PostgreSQLCheckRepository implements Check persistence for PostgreSQL databases.
type PostgreSQLCheckRepository struct {
	db *sql.DB
}

// NewPostgreSQLCheckRepository creates a new PostgreSQL Check repository instance.
func NewPostgreSQLCheckRepository(db *sql.DB) *PostgreSQLCheckRepository {
	return &PostgreSQLCheckRepository{db: db}
}

// Create inserts a new check record into the PostgreSQL database.
func (p *PostgreSQLCheckRepository) Create(ctx context.Context, check *checkDomain.Check) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO checks (id, fingerprint, length, valid, source, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		check.ID,
		check.Fingerprint,
		check.Length,
		check.Valid,
		check.Source.String(),
		check.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create check")
	}
	return nil
}

// List retrieves check records ordered by creation time descending.
func (p *PostgreSQLCheckRepository) List(ctx context.Context, offset, limit int) ([]*checkDomain.Check, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, fingerprint, length, valid, source, created_at
			  FROM checks
			  ORDER BY created_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list checks")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanChecks(rows)
}

// ListByFingerprint retrieves check records for a fingerprint ordered by
// creation time descending.
func (p *PostgreSQLCheckRepository) ListByFingerprint(
	ctx context.Context,
	fingerprint string,
	offset, limit int,
) ([]*checkDomain.Check, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, fingerprint, length, valid, source, created_at
			  FROM checks
			  WHERE fingerprint = $1
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, fingerprint, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list checks by fingerprint")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanChecks(rows)
}

// DeleteOlderThan removes check records created before the given time.
func (p *PostgreSQLCheckRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM checks WHERE created_at < $1`

	result, err := querier.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete old checks")
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	return removed, nil
}

// CountOlderThan counts check records created before the given time.
func (p *PostgreSQLCheckRepository) CountOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM checks WHERE created_at < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count old checks")
	}
	return count, nil
}

// scanChecks scans rows into check records. Returns an empty slice for empty
// result sets.
func scanChecks(rows *sql.Rows) ([]*checkDomain.Check, error) {
	checks := make([]*checkDomain.Check, 0)
	for rows.Next() {
		var check checkDomain.Check
		var source string

		err := rows.Scan(
			&check.ID,
			&check.Fingerprint,
			&check.Length,
			&check.Valid,
			&source,
			&check.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan check row")
		}

		check.Source = checkDomain.Source(source)
		checks = append(checks, &check)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating check rows")
	}

	return checks, nil
}
