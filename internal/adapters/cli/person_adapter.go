package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
)

// PersonAdapter translates CLI operations to PersonService calls and
// redraws the whole people table after every change.
type PersonAdapter struct {
	service primary.PersonService
	out     io.Writer
	format  string
}

// NewPersonAdapter creates a new PersonAdapter with the given service.
func NewPersonAdapter(service primary.PersonService, out io.Writer, format string) *PersonAdapter {
	return &PersonAdapter{
		service: service,
		out:     out,
		format:  format,
	}
}

type peopleView struct {
	Changed *primary.Person   `json:"changed,omitempty"`
	People  []*primary.Person `json:"people"`
}

// Add submits the form in Insert mode.
func (a *PersonAdapter) Add(ctx context.Context, fields primary.PersonFields) error {
	person, err := a.service.SubmitPerson(ctx, form.Create[primary.PersonFields]{Values: fields})
	if err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Created person %d: %s %s", person.ID, person.Name, person.Surname), person)
}

// Update runs the edit flow: the stored person pre-fills the form, edit
// applies the requested changes, and the form is submitted in Edit mode.
func (a *PersonAdapter) Update(ctx context.Context, id int64, edit func(*primary.PersonFields)) error {
	current, err := a.service.GetPerson(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get person: %w", err)
	}

	var state form.State[primary.PersonFields]
	state.Load(current.ID, current.Fields())
	edit(&state.Values)

	person, err := a.service.SubmitPerson(ctx, state.Submit())
	if err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Person %d updated", person.ID), person)
}

// Show displays a single person.
func (a *PersonAdapter) Show(ctx context.Context, id int64) error {
	person, err := a.service.GetPerson(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get person: %w", err)
	}

	if a.format == FormatJSON {
		return writeJSON(a.out, "", person)
	}

	fmt.Fprintf(a.out, "\nPerson:   %d\n", person.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", person.Name)
	fmt.Fprintf(a.out, "Apellido: %s\n", person.Surname)
	fmt.Fprintf(a.out, "Ciudad:   %s\n", person.City)
	if person.CreatedAt != "" {
		fmt.Fprintf(a.out, "Created:  %s\n", person.CreatedAt)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Delete removes a person. Deleting an unknown id still succeeds.
func (a *PersonAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.service.DeletePerson(ctx, id); err != nil {
		return err
	}

	return a.redraw(ctx, fmt.Sprintf("✓ Deleted person %d", id), nil)
}

// List draws the full people table.
func (a *PersonAdapter) List(ctx context.Context) error {
	return a.redraw(ctx, "", nil)
}

func (a *PersonAdapter) redraw(ctx context.Context, message string, changed *primary.Person) error {
	people, err := a.service.ListPeople(ctx)
	if err != nil {
		return fmt.Errorf("failed to list people: %w", err)
	}

	if a.format == FormatJSON {
		return writeJSON(a.out, message, peopleView{Changed: changed, People: people})
	}

	if message != "" {
		fmt.Fprintln(a.out, message)
	}

	if len(people) == 0 {
		fmt.Fprintln(a.out, "No people found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-15s %-15s %s\n", "ID", "NAME", "APELLIDO", "CIUDAD")
	fmt.Fprintln(a.out, rule)
	for _, p := range people {
		fmt.Fprintf(a.out, "%-6d %-15s %-15s %s\n", p.ID, p.Name, p.Surname, p.City)
	}
	fmt.Fprintln(a.out)

	return nil
}
