package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	checkDomain "github.com/allisson/cardcheck/internal/check/domain"
	"github.com/allisson/cardcheck/internal/database"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// MySQLCheckRepository implements Check persistence for MySQL databases.
// UUIDs are stored as BINARY(16).
type MySQLCheckRepository struct {
	db *sql.DB
}

// NewMySQLCheckRepository creates a new MySQL Check repository instance.
func NewMySQLCheckRepository(db *sql.DB) *MySQLCheckRepository {
	return &MySQLCheckRepository{db: db}
}

// Create inserts a new check record into the MySQL database.
func (m *MySQLCheckRepository) Create(ctx context.Context, check *checkDomain.Check) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO checks (id, fingerprint, length, valid, source, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	id, err := check.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal check id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLCheckRepository) List(ctx context.Context, offset, limit int) ([]*checkDomain.Check, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, fingerprint, length, valid, source, created_at
			  FROM checks
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list checks")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanBinaryIDChecks(rows)
}

// ListByFingerprint retrieves check records for a fingerprint ordered by
// creation time descending.
func (m *MySQLCheckRepository) ListByFingerprint(
	ctx context.Context,
	fingerprint string,
	offset, limit int,
) ([]*checkDomain.Check, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, fingerprint, length, valid, source, created_at
			  FROM checks
			  WHERE fingerprint = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, fingerprint, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list checks by fingerprint")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanBinaryIDChecks(rows)
}

// DeleteOlderThan removes check records created before the given time.
func (m *MySQLCheckRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM checks WHERE created_at < ?`

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
func (m *MySQLCheckRepository) CountOlderThan(ctx context.Context, olderThan time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM checks WHERE created_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count old checks")
	}
	return count, nil
}

// scanBinaryIDChecks scans rows with BINARY(16) UUIDs into check records.
func scanBinaryIDChecks(rows *sql.Rows) ([]*checkDomain.Check, error) {
	checks := make([]*checkDomain.Check, 0)
	for rows.Next() {
		var check checkDomain.Check
		var idBytes []byte
		var source string

		err := rows.Scan(
			&idBytes,
			&check.Fingerprint,
			&check.Length,
			&check.Valid,
			&source,
			&check.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan check row")
		}

		id, err := uuid.FromBytes(idBytes)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal check id")
		}

		check.ID = id
		check.Source = checkDomain.Source(source)
		checks = append(checks, &check)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating check rows")
	}

	return checks, nil
}
