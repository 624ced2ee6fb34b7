package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, user_id, title, priority, status, due_date, estimated_min, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		string(t.Priority),
		string(t.Status),
		nullableTimeToString(t.DueDate, time.RFC3339),
		nullableIntToValue(t.EstimatedMin),
		t.CreatedAt.UTC().Format(time.RFC3339),
		t.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *SQLiteTaskRepo) ListPending(ctx context.Context, userID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status IN ('pending', 'in_progress')
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pending tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Patch(ctx context.Context, id string, patch domain.TaskPatch, now time.Time) (*domain.Task, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.ClearDueDate {
		t.DueDate = nil
	} else if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.EstimatedMin != nil {
		t.EstimatedMin = patch.EstimatedMin
	}
	t.UpdatedAt = now

	query := `UPDATE tasks SET title = ?, priority = ?, status = ?, due_date = ?, estimated_min = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Priority),
		string(t.Status),
		nullableTimeToString(t.DueDate, time.RFC3339),
		nullableIntToValue(t.EstimatedMin),
		now.UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var priorityStr, statusStr, createdAtStr, updatedAtStr string
	var dueDate sql.NullString
	var estimatedMin sql.NullInt64

	err := row.Scan(&t.ID, &t.UserID, &t.Title, &priorityStr, &statusStr, &dueDate, &estimatedMin, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return populateTask(&t, priorityStr, statusStr, dueDate, estimatedMin, createdAtStr, updatedAtStr)
}

func scanTaskRow(rows *sql.Rows) (*domain.Task, error) {
	var t domain.Task
	var priorityStr, statusStr, createdAtStr, updatedAtStr string
	var dueDate sql.NullString
	var estimatedMin sql.NullInt64

	if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &priorityStr, &statusStr, &dueDate, &estimatedMin, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return populateTask(&t, priorityStr, statusStr, dueDate, estimatedMin, createdAtStr, updatedAtStr)
}

func populateTask(t *domain.Task, priorityStr, statusStr string, dueDate sql.NullString, estimatedMin sql.NullInt64, createdAtStr, updatedAtStr string) (*domain.Task, error) {
	t.Priority = domain.Priority(priorityStr)
	t.Status = domain.TaskStatus(statusStr)
	t.DueDate = parseNullableTime(dueDate, time.RFC3339)
	if estimatedMin.Valid {
		v := int(estimatedMin.Int64)
		t.EstimatedMin = &v
	}

	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing task updated_at: %w", err)
	}
	return t, nil
}
