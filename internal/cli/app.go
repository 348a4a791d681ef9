package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/featurepulse/featurepulse-go/internal/api"
	"github.com/featurepulse/featurepulse-go/internal/config"
	"github.com/featurepulse/featurepulse-go/internal/device"
	"github.com/featurepulse/featurepulse-go/internal/logging"
	"github.com/featurepulse/featurepulse-go/internal/models"
	"github.com/featurepulse/featurepulse-go/internal/repositories"
	"github.com/featurepulse/featurepulse-go/internal/session"
	"github.com/featurepulse/featurepulse-go/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	repos   *repositories.Repositories
	store   *store.Store
	tracker *session.Tracker
	user    *models.User
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	repos, err := repositories.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "initializing database failed", "error", err)
		return nil, err
	}

	deviceID, err := device.GetOrCreate(ctx, repos.Metadata)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	user := &models.User{DeviceID: deviceID}
	client := api.NewHTTPClient(cfg, user, nil)

	return &App{
		config:  cfg,
		log:     log,
		repos:   repos,
		store:   store.New(client, user, log),
		tracker: session.NewTracker(client, repos.Metadata, log, cfg.SessionTimeout),
		user:    user,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.repos.Close() }()

	// starting the CLI is a foreground transition
	a.tracker.TrackAppOpen(ctx)

	a.Root(ctx)
}
