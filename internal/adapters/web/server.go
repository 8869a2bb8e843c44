// Package web serves both lists as server-rendered pages. Every mutation
// redirects back to the list page, which re-queries and redraws the table.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	corebudget "github.com/example/lister/internal/core/budget"
	"github.com/example/lister/internal/ctxutil"
	"github.com/example/lister/internal/ports/primary"
)

//go:embed templates/*.html
var templateFS embed.FS

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// Server wires the services to fiber routes.
type Server struct {
	people   primary.PersonService
	products primary.ProductService
	budgets  primary.BudgetService
	logger   *zap.Logger
	app      *fiber.App
}

// NewServer builds the fiber app and registers every route.
func NewServer(people primary.PersonService, products primary.ProductService, budgets primary.BudgetService, logger *zap.Logger) (*Server, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("money", corebudget.Format)
	engine.AddFunc("qty", func(q float64) string { return strconv.FormatFloat(q, 'f', -1, 64) })

	s := &Server{
		people:   people,
		products: products,
		budgets:  budgets,
		logger:   logger.Named("web"),
	}

	s.app = fiber.New(fiber.Config{
		Views:                 engine,
		ViewsLayout:           "layout",
		AppName:               "lister",
		DisableStartupMessage: true,
	})
	s.app.Use(s.requestLogger)
	s.registerRoutes()

	return s, nil
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) registerRoutes() {
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/people", fiber.StatusSeeOther)
	})

	s.app.Get("/people", s.peoplePage)
	s.app.Get("/people/:id/edit", s.personEdit)
	s.app.Post("/people", s.personSubmit)
	s.app.Post("/people/:id/delete", s.personDelete)

	s.app.Get("/products", s.productsPage)
	s.app.Get("/products/:id/edit", s.productEdit)
	s.app.Post("/products", s.productSubmit)
	s.app.Post("/products/:id/delete", s.productDelete)
	s.app.Post("/products/:id/purchased", s.productPurchased)
	s.app.Post("/budget", s.budgetSubmit)

	api := s.app.Group("/api")
	api.Get("/people", s.apiPeople)
	api.Get("/products", s.apiProducts)
	api.Get("/budget", s.apiBudget)
}

// requestLogger tags each request with an id and logs it once finished.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	id := c.Get(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(RequestIDHeader, id)
	c.SetUserContext(ctxutil.WithRequestID(c.UserContext(), id))

	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}
	s.logger.Info("request",
		zap.String("request_id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	)
	return err
}

// fail logs a failed operation. Pages keep rendering after a failure.
func (s *Server) fail(c *fiber.Ctx, op string, err error) {
	s.logger.Error(op+" failed",
		zap.String("request_id", ctxutil.RequestIDFromContext(c.UserContext())),
		zap.Error(err),
	)
}

func (s *Server) seeOther(c *fiber.Ctx, path string) error {
	return c.Redirect(path, fiber.StatusSeeOther)
}
