// Package wire provides dependency injection for the lister application.
// It builds one App per process from the loaded configuration.
package wire

import (
	"database/sql"
	"fmt"
	"io"

	"go.uber.org/zap"

	cliadapter "github.com/example/lister/internal/adapters/cli"
	"github.com/example/lister/internal/adapters/logging"
	"github.com/example/lister/internal/adapters/sqlite"
	"github.com/example/lister/internal/adapters/web"
	"github.com/example/lister/internal/app"
	"github.com/example/lister/internal/config"
	"github.com/example/lister/internal/db"
	"github.com/example/lister/internal/ports/primary"
)

// App holds the services for both lists and the handles they share.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sql.DB

	PersonService  primary.PersonService
	ProductService primary.ProductService
	BudgetService  primary.BudgetService
}

// New opens the database and builds every service. The returned App is
// ready for use; callers must Close it.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
		return nil, err
	}
	logger.Debug("database ready", zap.String("path", cfg.DBPath))

	// Secondary ports, sqlite adapters with the injected DB
	personRepo := sqlite.NewPersonRepository(database)
	productRepo := sqlite.NewProductRepository(database)
	budgetRepo := sqlite.NewBudgetRepository(database)
	logWriter := logging.NewZapLogWriter(logger)

	return &App{
		Config:         cfg,
		Logger:         logger,
		DB:             database,
		PersonService:  app.NewPersonService(personRepo, logWriter),
		ProductService: app.NewProductService(productRepo, logWriter),
		BudgetService:  app.NewBudgetService(budgetRepo, productRepo),
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// PersonAdapter returns a new PersonAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (a *App) PersonAdapter(out io.Writer, format string) *cliadapter.PersonAdapter {
	return cliadapter.NewPersonAdapter(a.PersonService, out, format)
}

// ProductAdapter returns a new ProductAdapter writing to out.
func (a *App) ProductAdapter(out io.Writer, format string) *cliadapter.ProductAdapter {
	return cliadapter.NewProductAdapter(a.ProductService, a.BudgetService, out, format)
}

// WebServer builds the HTTP front end.
func (a *App) WebServer() (*web.Server, error) {
	return web.NewServer(a.PersonService, a.ProductService, a.BudgetService, a.Logger)
}
