package app

import (
	"context"
	"fmt"

	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
	"github.com/example/lister/internal/ports/secondary"
)

// PersonServiceImpl implements the PersonService interface.
type PersonServiceImpl struct {
	personRepo secondary.PersonRepository
	logWriter  secondary.LogWriter
}

// NewPersonService creates a new PersonService with injected dependencies.
// logWriter may be nil.
func NewPersonService(personRepo secondary.PersonRepository, logWriter secondary.LogWriter) *PersonServiceImpl {
	return &PersonServiceImpl{
		personRepo: personRepo,
		logWriter:  logWriter,
	}
}

// CreatePerson inserts a new person.
func (s *PersonServiceImpl) CreatePerson(ctx context.Context, req primary.CreatePersonRequest) (*primary.CreatePersonResponse, error) {
	id, err := s.personRepo.Create(ctx, &secondary.PersonRecord{
		Name:    req.Fields.Name,
		Surname: req.Fields.Surname,
		City:    req.Fields.City,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogCreate(ctx, "person", id)
	}

	created, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created person: %w", err)
	}

	return &primary.CreatePersonResponse{
		PersonID: id,
		Person:   recordToPerson(created),
	}, nil
}

// UpdatePerson replaces every field of an existing person.
func (s *PersonServiceImpl) UpdatePerson(ctx context.Context, req primary.UpdatePersonRequest) error {
	err := s.personRepo.Update(ctx, &secondary.PersonRecord{
		ID:      req.PersonID,
		Name:    req.Fields.Name,
		Surname: req.Fields.Surname,
		City:    req.Fields.City,
	})
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogUpdate(ctx, "person", req.PersonID, "", "", "")
	}
	return nil
}

// SubmitPerson applies a form submission and returns the stored person.
func (s *PersonServiceImpl) SubmitPerson(ctx context.Context, sub form.Submission[primary.PersonFields]) (*primary.Person, error) {
	switch v := sub.(type) {
	case form.Create[primary.PersonFields]:
		resp, err := s.CreatePerson(ctx, primary.CreatePersonRequest{Fields: v.Values})
		if err != nil {
			return nil, err
		}
		return resp.Person, nil
	case form.Update[primary.PersonFields]:
		if err := s.UpdatePerson(ctx, primary.UpdatePersonRequest{PersonID: v.ID, Fields: v.Values}); err != nil {
			return nil, err
		}
		return s.GetPerson(ctx, v.ID)
	default:
		return nil, fmt.Errorf("unsupported submission %T", sub)
	}
}

// GetPerson retrieves a person by id.
func (s *PersonServiceImpl) GetPerson(ctx context.Context, id int64) (*primary.Person, error) {
	record, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToPerson(record), nil
}

// DeletePerson removes a person.
func (s *PersonServiceImpl) DeletePerson(ctx context.Context, id int64) error {
	if err := s.personRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	if s.logWriter != nil {
		_ = s.logWriter.LogDelete(ctx, "person", id)
	}
	return nil
}

// ListPeople retrieves every person in id order.
func (s *PersonServiceImpl) ListPeople(ctx context.Context) ([]*primary.Person, error) {
	people := []*primary.Person{}
	for record, err := range s.personRepo.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list people: %w", err)
		}
		people = append(people, recordToPerson(record))
	}
	return people, nil
}

// Helper methods

func recordToPerson(r *secondary.PersonRecord) *primary.Person {
	return &primary.Person{
		ID:        r.ID,
		Name:      r.Name,
		Surname:   r.Surname,
		City:      r.City,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure PersonServiceImpl implements the interface.
var _ primary.PersonService = (*PersonServiceImpl)(nil)
