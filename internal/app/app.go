package app

import (
	"context"
	"fmt"

	"github.com/blogdeck/blogdeck/internal/api"
	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/push"
	"github.com/blogdeck/blogdeck/internal/session"
	"github.com/blogdeck/blogdeck/internal/state"
	"github.com/blogdeck/blogdeck/internal/ui"
)

// Options configure the blogdeck application.
type Options struct {
	ConfigPath string
	Server     string // overrides the configured server when non-empty
	TokenPath  string // empty uses the configured or default session file
}

// Run boots the blogdeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Server != "" {
		cfg.Server = opts.Server
	}
	if opts.TokenPath != "" {
		cfg.TokenPath = opts.TokenPath
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = session.DefaultTokenPath()
	}

	logger := newLogger(cfg.LogPath)
	defer func() { _ = logger.Sync() }()

	client, err := api.NewClient(cfg.Server)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}
	sess := &session.Session{}
	listener := push.New(client.BaseURL(), store, logger.Named("push"))
	// The UI starts the listener when a session begins; stop here covers
	// shutdown with a session still active.
	defer listener.Stop()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Session:   sess,
		Listener:  listener,
		TokenPath: cfg.TokenPath,
		Logger:    logger.Named("ui"),
	}
	return ui.Run(uiOpts)
}
