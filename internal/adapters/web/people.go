package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
)

type personForm struct {
	ID     int64
	Mode   string
	Fields primary.PersonFields
}

func (s *Server) peoplePage(c *fiber.Ctx) error {
	return s.renderPeople(c, form.State[primary.PersonFields]{})
}

func (s *Server) personEdit(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := form.ParseID(c.Params("id"))
	if err != nil {
		s.fail(c, "edit person", err)
		return s.seeOther(c, "/people")
	}

	person, err := s.people.GetPerson(ctx, id)
	if err != nil {
		s.fail(c, "get person", err)
		return s.seeOther(c, "/people")
	}

	var state form.State[primary.PersonFields]
	state.Load(person.ID, person.Fields())
	return s.renderPeople(c, state)
}

func (s *Server) personSubmit(c *fiber.Ctx) error {
	fields := primary.PersonFields{
		Name:    c.FormValue("name"),
		Surname: c.FormValue("apellido"),
		City:    c.FormValue("ciudad"),
	}

	sub, err := form.Decide(c.FormValue("id"), fields)
	if err != nil {
		s.fail(c, "submit person", err)
		return s.seeOther(c, "/people")
	}

	if _, err := s.people.SubmitPerson(c.UserContext(), sub); err != nil {
		s.fail(c, "submit person", err)
	}
	return s.seeOther(c, "/people")
}

func (s *Server) personDelete(c *fiber.Ctx) error {
	id, err := form.ParseID(c.Params("id"))
	if err != nil {
		s.fail(c, "delete person", err)
		return s.seeOther(c, "/people")
	}

	if err := s.people.DeletePerson(c.UserContext(), id); err != nil {
		s.fail(c, "delete person", err)
	}
	return s.seeOther(c, "/people")
}

func (s *Server) renderPeople(c *fiber.Ctx, state form.State[primary.PersonFields]) error {
	people, err := s.people.ListPeople(c.UserContext())
	if err != nil {
		s.fail(c, "list people", err)
	}

	return c.Render("people", fiber.Map{
		"Title":  "Personas",
		"People": people,
		"Form": personForm{
			ID:     state.ID(),
			Mode:   state.Mode().String(),
			Fields: state.Values,
		},
	})
}

func (s *Server) apiPeople(c *fiber.Ctx) error {
	people, err := s.people.ListPeople(c.UserContext())
	if err != nil {
		s.fail(c, "list people", err)
		return fiber.ErrInternalServerError
	}
	return c.JSON(people)
}
