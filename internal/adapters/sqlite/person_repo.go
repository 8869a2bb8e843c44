// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"time"

	"github.com/example/lister/internal/ports/secondary"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const personColumns = "id, name, apellido, ciudad, created_at, updated_at"

// PersonRepository implements secondary.PersonRepository with SQLite.
type PersonRepository struct {
	db *sql.DB
}

// NewPersonRepository creates a new SQLite person repository.
func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create persists a new person and returns the assigned id.
func (r *PersonRepository) Create(ctx context.Context, person *secondary.PersonRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO personas (name, apellido, ciudad) VALUES (?, ?, ?)",
		person.Name, person.Surname, person.City,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned person id: %w", err)
	}

	return id, nil
}

// GetByID retrieves a person by its id.
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*secondary.PersonRecord, error) {
	record, err := scanPerson(r.db.QueryRowContext(ctx,
		"SELECT "+personColumns+" FROM personas WHERE id = ?",
		id,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("person %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return record, nil
}

// Update replaces the person stored at person.ID.
func (r *PersonRepository) Update(ctx context.Context, person *secondary.PersonRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE personas SET name = ?, apellido = ?, ciudad = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		person.Name, person.Surname, person.City, person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("person %d: %w", person.ID, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a person. Absent ids are ignored.
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM personas WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

// All walks the personas table in id order.
// The connection is held until the loop finishes, so the loop body must
// not issue other statements against the same database.
func (r *PersonRepository) All(ctx context.Context) iter.Seq2[*secondary.PersonRecord, error] {
	return func(yield func(*secondary.PersonRecord, error) bool) {
		rows, err := r.db.QueryContext(ctx,
			"SELECT "+personColumns+" FROM personas ORDER BY id ASC",
		)
		if err != nil {
			yield(nil, fmt.Errorf("failed to list people: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			record, err := scanPerson(rows)
			if err != nil {
				yield(nil, fmt.Errorf("failed to scan person: %w", err))
				return
			}
			if !yield(record, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("failed to iterate people: %w", err))
		}
	}
}

// List retrieves all people ordered by id.
func (r *PersonRepository) List(ctx context.Context) ([]*secondary.PersonRecord, error) {
	var people []*secondary.PersonRecord
	for record, err := range r.All(ctx) {
		if err != nil {
			return nil, err
		}
		people = append(people, record)
	}
	return people, nil
}

func scanPerson(row rowScanner) (*secondary.PersonRecord, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.PersonRecord{}
	if err := row.Scan(&record.ID, &record.Name, &record.Surname, &record.City, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Ensure PersonRepository implements the interface.
var _ secondary.PersonRepository = (*PersonRepository)(nil)
