package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db *sql.DB
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(db *sql.DB) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: db}
}

func (r *SQLiteCheckInRepo) Create(ctx context.Context, c *domain.EnergyCheckIn) error {
	query := `INSERT INTO energy_checkins (id, user_id, level, recorded_at, period, day_of_week, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Level,
		c.RecordedAt.UTC().Format(time.RFC3339),
		string(c.Period),
		c.DayOfWeek,
		joinTags(c.Tags),
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting energy check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) ListSince(ctx context.Context, userID string, since time.Time) ([]domain.EnergyCheckIn, error) {
	query := `SELECT id, user_id, level, recorded_at, period, day_of_week, tags, created_at
		FROM energy_checkins
		WHERE user_id = ? AND recorded_at > ?
		ORDER BY recorded_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []domain.EnergyCheckIn
	for rows.Next() {
		var c domain.EnergyCheckIn
		var recordedAtStr, periodStr, tagsStr, createdAtStr string
		if err := rows.Scan(&c.ID, &c.UserID, &c.Level, &recordedAtStr, &periodStr, &c.DayOfWeek, &tagsStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning check-in: %w", err)
		}
		if c.RecordedAt, err = time.Parse(time.RFC3339, recordedAtStr); err != nil {
			return nil, fmt.Errorf("parsing check-in recorded_at: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing check-in created_at: %w", err)
		}
		c.Period = domain.TimePeriod(periodStr)
		c.Tags = splitTags(tagsStr)
		checkIns = append(checkIns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return checkIns, nil
}

func (r *SQLiteCheckInRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM energy_checkins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting check-in: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting check-in: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("check-in %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCheckInRepo) CountToday(ctx context.Context, userID string, day time.Time) (int, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int
	query := `SELECT COUNT(*) FROM energy_checkins
		WHERE user_id = ? AND recorded_at >= ? AND recorded_at < ?`
	err := r.db.QueryRowContext(ctx, query, userID,
		dayStart.UTC().Format(time.RFC3339), dayEnd.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting today's check-ins: %w", err)
	}
	return count, nil
}
