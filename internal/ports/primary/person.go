// Package primary defines the primary ports (driving adapters) for the application.
// CLI and web adapters drive the application through these interfaces.
package primary

import (
	"context"

	"github.com/example/lister/internal/core/form"
)

// PersonService defines the primary port for the people list.
type PersonService interface {
	// CreatePerson inserts a new person; the id is assigned by the store.
	CreatePerson(ctx context.Context, req CreatePersonRequest) (*CreatePersonResponse, error)

	// UpdatePerson replaces every field of an existing person.
	UpdatePerson(ctx context.Context, req UpdatePersonRequest) error

	// SubmitPerson applies a form submission, creating or updating.
	SubmitPerson(ctx context.Context, sub form.Submission[PersonFields]) (*Person, error)

	// GetPerson retrieves a person by id.
	GetPerson(ctx context.Context, id int64) (*Person, error)

	// DeletePerson removes a person. Unknown ids are not an error.
	DeletePerson(ctx context.Context, id int64) error

	// ListPeople retrieves every person in id order.
	ListPeople(ctx context.Context) ([]*Person, error)
}

// PersonFields are the user-editable fields of a person.
type PersonFields struct {
	Name    string
	Surname string
	City    string
}

// CreatePersonRequest contains parameters for creating a person.
type CreatePersonRequest struct {
	Fields PersonFields
}

// CreatePersonResponse contains the result of creating a person.
type CreatePersonResponse struct {
	PersonID int64
	Person   *Person
}

// UpdatePersonRequest contains parameters for replacing a person.
type UpdatePersonRequest struct {
	PersonID int64
	Fields   PersonFields
}

// Person represents a person at the port boundary.
type Person struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"apellido"`
	City      string `json:"ciudad"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Fields returns the editable part of the person, for pre-filling a form.
func (p *Person) Fields() PersonFields {
	return PersonFields{Name: p.Name, Surname: p.Surname, City: p.City}
}
