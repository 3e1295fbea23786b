// Package wire provides dependency injection for the outreach application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	"github.com/rs/zerolog"

	cliadapter "github.com/example/outreach/internal/adapters/cli"
	"github.com/example/outreach/internal/adapters/sqlstore"
	"github.com/example/outreach/internal/app"
	"github.com/example/outreach/internal/config"
	"github.com/example/outreach/internal/db"
	"github.com/example/outreach/internal/logging"
	"github.com/example/outreach/internal/ports/primary"
)

var (
	configPath string

	cfg             *config.Config
	logger          zerolog.Logger
	database        *sql.DB
	entityService   primary.EntityService
	campaignService primary.CampaignService
	activityService primary.ActivityService
	reportService   primary.ReportService

	configOnce   sync.Once
	servicesOnce sync.Once
)

// SetConfigPath selects the config file read on first use. It must be called
// before any other function in this package.
func SetConfigPath(path string) {
	configPath = path
}

// Config returns the singleton configuration.
func Config() *config.Config {
	configOnce.Do(initConfig)
	return cfg
}

// Logger returns the singleton logger.
func Logger() zerolog.Logger {
	configOnce.Do(initConfig)
	return logger
}

// DB returns the singleton database handle, opened and migrated.
func DB() *sql.DB {
	servicesOnce.Do(initServices)
	return database
}

// EntityService returns the singleton EntityService instance.
func EntityService() primary.EntityService {
	servicesOnce.Do(initServices)
	return entityService
}

// CampaignService returns the singleton CampaignService instance.
func CampaignService() primary.CampaignService {
	servicesOnce.Do(initServices)
	return campaignService
}

// ActivityService returns the singleton ActivityService instance.
func ActivityService() primary.ActivityService {
	servicesOnce.Do(initServices)
	return activityService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	servicesOnce.Do(initServices)
	return reportService
}

// Close releases the database handle if it was opened.
func Close() {
	if database != nil {
		database.Close()
	}
}

func initConfig() {
	loaded, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := loaded.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	cfg = loaded
	logger = logging.New(cfg, os.Stderr)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	configOnce.Do(initConfig)

	opened, err := db.Open(context.Background(), cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	database = opened
	logger.Debug().Str("driver", cfg.Database.Driver).Str("url", cfg.SanitizedURL()).Msg("database ready")

	// Secondary port: one store, each operation in its own transaction
	store := sqlstore.NewStore(database, cfg.Database.Driver, logger)

	// Primary ports
	entityService = app.NewEntityService(store, logger)
	campaignService = app.NewCampaignService(store, logger)
	activityService = app.NewActivityService(store, logger)
	reportService = app.NewReportService(store, nil)
}

// EntityAdapter returns a new EntityAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func EntityAdapter() *cliadapter.EntityAdapter {
	return EntityAdapterWithOutput(os.Stdout)
}

// EntityAdapterWithOutput returns a new EntityAdapter writing to the given output.
func EntityAdapterWithOutput(out io.Writer) *cliadapter.EntityAdapter {
	return cliadapter.NewEntityAdapter(EntityService(), out)
}

// CampaignAdapter returns a new CampaignAdapter writing to stdout.
func CampaignAdapter() *cliadapter.CampaignAdapter {
	return CampaignAdapterWithOutput(os.Stdout)
}

// CampaignAdapterWithOutput returns a new CampaignAdapter writing to the given output.
func CampaignAdapterWithOutput(out io.Writer) *cliadapter.CampaignAdapter {
	return cliadapter.NewCampaignAdapter(CampaignService(), out)
}

// ActivityAdapter returns a new ActivityAdapter writing to stdout.
func ActivityAdapter() *cliadapter.ActivityAdapter {
	return ActivityAdapterWithOutput(os.Stdout)
}

// ActivityAdapterWithOutput returns a new ActivityAdapter writing to the given output.
func ActivityAdapterWithOutput(out io.Writer) *cliadapter.ActivityAdapter {
	return cliadapter.NewActivityAdapter(ActivityService(), out)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	return cliadapter.NewReportAdapter(ReportService(), out)
}
