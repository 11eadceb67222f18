// Package cli implements the terminal front end. It is a consumer of the
// session controller: it subscribes to session state and forwards user
// commands, holding no session logic of its own.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/client/config"
	"github.com/morikawa/riskadvisor/internal/client/services"
	"github.com/morikawa/riskadvisor/internal/client/session"
	"github.com/morikawa/riskadvisor/internal/client/store"
	"github.com/morikawa/riskadvisor/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config        *config.Config
	session       *session.Controller
	masterData    services.MasterDataService
	consultations services.ConsultationService
	analysis      services.AnalysisService
	logger        logging.Logger
	reader        *bufio.Reader
	db            *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := store.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	apiClient := api.New(cfg.ServerEndpointAddr, cfg.RequestTimeout, logger)
	st := store.NewSQLiteStore(db)
	controller := session.NewController(apiClient, st, logger)

	controller.Subscribe(func(s session.Session) {
		logger.Debug(ctx, "session state changed", "status", string(s.Status))
	})

	return &App{
		config:        cfg,
		session:       controller,
		masterData:    services.NewMasterDataService(apiClient),
		consultations: services.NewConsultationService(apiClient, controller),
		analysis:      services.NewAnalysisService(apiClient, controller),
		logger:        logger,
		reader:        bufio.NewReader(os.Stdin),
		db:            db,
	}, nil
}

// Run validates any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.session.Initialize(ctx); err != nil {
		a.logger.Warn(ctx, "session initialization failed", "error", err.Error())
	}

	a.Main(ctx)
}
