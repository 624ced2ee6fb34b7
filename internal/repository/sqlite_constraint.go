package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// SQLiteConstraintRepo implements ConstraintRepo using a SQLite database.
// The typed constraint value is stored as a JSON column.
type SQLiteConstraintRepo struct {
	db *sql.DB
}

// NewSQLiteConstraintRepo creates a new SQLiteConstraintRepo.
func NewSQLiteConstraintRepo(db *sql.DB) *SQLiteConstraintRepo {
	return &SQLiteConstraintRepo{db: db}
}

func (r *SQLiteConstraintRepo) Upsert(ctx context.Context, c *domain.SchedulingConstraint) error {
	value, err := json.Marshal(c.Value)
	if err != nil {
		return fmt.Errorf("encoding constraint value: %w", err)
	}
	query := `INSERT INTO scheduling_constraints (user_id, type, value, priority, active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, type) DO UPDATE SET value = excluded.value,
			priority = excluded.priority, active = excluded.active`
	_, err = r.db.ExecContext(ctx, query,
		c.UserID, string(c.Type), string(value), c.Priority, boolToInt(c.Active))
	if err != nil {
		return fmt.Errorf("upserting constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) List(ctx context.Context, userID string) ([]domain.SchedulingConstraint, error) {
	return r.list(ctx, userID, false)
}

func (r *SQLiteConstraintRepo) ListActive(ctx context.Context, userID string) ([]domain.SchedulingConstraint, error) {
	return r.list(ctx, userID, true)
}

func (r *SQLiteConstraintRepo) list(ctx context.Context, userID string, activeOnly bool) ([]domain.SchedulingConstraint, error) {
	query := `SELECT user_id, type, value, priority, active FROM scheduling_constraints
		WHERE user_id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY priority, type`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing constraints: %w", err)
	}
	defer rows.Close()

	var constraints []domain.SchedulingConstraint
	for rows.Next() {
		var c domain.SchedulingConstraint
		var typeStr, valueStr string
		var active int
		if err := rows.Scan(&c.UserID, &typeStr, &valueStr, &c.Priority, &active); err != nil {
			return nil, fmt.Errorf("scanning constraint: %w", err)
		}
		if err := json.Unmarshal([]byte(valueStr), &c.Value); err != nil {
			return nil, fmt.Errorf("decoding constraint value: %w", err)
		}
		c.Type = domain.ConstraintType(typeStr)
		c.Active = intToBool(active)
		constraints = append(constraints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating constraints: %w", err)
	}
	return constraints, nil
}

func (r *SQLiteConstraintRepo) Delete(ctx context.Context, userID string, typ domain.ConstraintType) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM scheduling_constraints WHERE user_id = ? AND type = ?`, userID, string(typ))
	if err != nil {
		return fmt.Errorf("deleting constraint: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting constraint: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("constraint %s/%s: %w", userID, typ, ErrNotFound)
	}
	return nil
}
