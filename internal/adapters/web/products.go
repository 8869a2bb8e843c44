package web

import (
	"github.com/gofiber/fiber/v2"

	corebudget "github.com/example/lister/internal/core/budget"
	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
)

type productForm struct {
	ID     int64
	Mode   string
	Fields primary.ProductFields
}

func (s *Server) productsPage(c *fiber.Ctx) error {
	return s.renderProducts(c, form.State[primary.ProductFields]{})
}

func (s *Server) productEdit(c *fiber.Ctx) error {
	id, err := form.ParseID(c.Params("id"))
	if err != nil {
		s.fail(c, "edit product", err)
		return s.seeOther(c, "/products")
	}

	product, err := s.products.GetProduct(c.UserContext(), id)
	if err != nil {
		s.fail(c, "get product", err)
		return s.seeOther(c, "/products")
	}

	var state form.State[primary.ProductFields]
	state.Load(product.ID, product.Fields())
	return s.renderProducts(c, state)
}

func (s *Server) productSubmit(c *fiber.Ctx) error {
	fields := primary.ProductFields{
		Name:      c.FormValue("name"),
		Brand:     c.FormValue("brand"),
		Quantity:  form.Number(c.FormValue("quantity")),
		UnitPrice: form.Number(c.FormValue("unitPrice")),
		Purchased: form.Flag(c.FormValue("purchased")),
	}

	sub, err := form.Decide(c.FormValue("id"), fields)
	if err != nil {
		s.fail(c, "submit product", err)
		return s.seeOther(c, "/products")
	}

	if _, err := s.products.SubmitProduct(c.UserContext(), sub); err != nil {
		s.fail(c, "submit product", err)
	}
	return s.seeOther(c, "/products")
}

func (s *Server) productDelete(c *fiber.Ctx) error {
	id, err := form.ParseID(c.Params("id"))
	if err != nil {
		s.fail(c, "delete product", err)
		return s.seeOther(c, "/products")
	}

	if err := s.products.DeleteProduct(c.UserContext(), id); err != nil {
		s.fail(c, "delete product", err)
	}
	return s.seeOther(c, "/products")
}

func (s *Server) productPurchased(c *fiber.Ctx) error {
	id, err := form.ParseID(c.Params("id"))
	if err != nil {
		s.fail(c, "set purchased", err)
		return s.seeOther(c, "/products")
	}

	if err := s.products.SetPurchased(c.UserContext(), id, form.Flag(c.FormValue("purchased"))); err != nil {
		s.fail(c, "set purchased", err)
	}
	return s.seeOther(c, "/products")
}

func (s *Server) budgetSubmit(c *fiber.Ctx) error {
	if err := s.budgets.SetBudget(c.UserContext(), corebudget.Parse(c.FormValue("budget"))); err != nil {
		s.fail(c, "set budget", err)
	}
	return s.seeOther(c, "/products")
}

func (s *Server) renderProducts(c *fiber.Ctx, state form.State[primary.ProductFields]) error {
	ctx := c.UserContext()

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		s.fail(c, "list products", err)
	}

	summary, err := s.budgets.Summary(ctx)
	if err != nil {
		s.fail(c, "budget summary", err)
		summary = &primary.BudgetSummary{}
	}

	stale := false
	for _, p := range products {
		stale = stale || p.SubtotalStale
	}

	return c.Render("products", fiber.Map{
		"Title":    "Productos",
		"Products": products,
		"Budget":   summary,
		"Stale":    stale,
		"Form": productForm{
			ID:     state.ID(),
			Mode:   state.Mode().String(),
			Fields: state.Values,
		},
	})
}

func (s *Server) apiProducts(c *fiber.Ctx) error {
	products, err := s.products.ListProducts(c.UserContext())
	if err != nil {
		s.fail(c, "list products", err)
		return fiber.ErrInternalServerError
	}
	return c.JSON(products)
}

func (s *Server) apiBudget(c *fiber.Ctx) error {
	summary, err := s.budgets.Summary(c.UserContext())
	if err != nil {
		s.fail(c, "budget summary", err)
		return fiber.ErrInternalServerError
	}
	return c.JSON(summary)
}
