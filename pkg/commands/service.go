package commands

import (
	"context"

	"tableflip.dev/diary/pkg/app"
	"tableflip.dev/diary/pkg/logging"
	"tableflip.dev/diary/pkg/store"
)

// open loads the config, opens the store and seeds it. A seeding failure
// means the diary can not be used at all.
func open(ctx context.Context) (*app.Service, *store.FileConfig, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: logging.Format(cfg.LogFormat),
	})
	p, err := store.Load(cfg, store.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	svc := &app.Service{Persistence: p, Log: log}
	if err := svc.Init(ctx); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
