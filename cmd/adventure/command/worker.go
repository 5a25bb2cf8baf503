package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/forge"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Game storage
	games, err := cfg.Cache.buildGameCache()
	if err != nil {
		return nil, fmt.Errorf("creating game cache: %w", err)
	}

	// Messaging
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	events := messaging.NewGameEvents(natsServer)

	// Forge scheduler
	forgeOpts, err := cfg.Forge.buildOpts()
	if err != nil {
		return nil, fmt.Errorf("configuring forge scheduler: %w", err)
	}
	scheduler := forge.NewScheduler(games, events, forgeOpts...)

	// Sessions
	sessions := session.NewManager(games, scheduler, events, natsServer)
	cm := listener.NewConnectionManager(sessions)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		worker, err := l.BuildListener(cm, sessions, games)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = worker
	}

	return service.WorkerList{
		"nats":      natsServer,
		"forge":     scheduler,
		"sessions":  sessions,
		"listeners": &listeners,
	}, nil
}
