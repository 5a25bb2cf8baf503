package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-adventure/internal/forge"
	"github.com/pixil98/go-errors"
)

type ForgeConfig struct {
	TickInterval    string `json:"tick_interval"`
	StalenessWindow string `json:"staleness_window"`
}

func (c *ForgeConfig) validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
		}
	}

	if c.StalenessWindow != "" {
		_, err := time.ParseDuration(c.StalenessWindow)
		if err != nil {
			el.Add(fmt.Errorf("parsing staleness_window: %w", err))
		}
	}

	return el.Err()
}

func (c *ForgeConfig) buildOpts() ([]forge.SchedulerOpt, error) {
	var opts []forge.SchedulerOpt

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		opts = append(opts, forge.WithTickInterval(d))
	}

	if c.StalenessWindow != "" {
		d, err := time.ParseDuration(c.StalenessWindow)
		if err != nil {
			return nil, fmt.Errorf("parsing staleness_window: %w", err)
		}
		opts = append(opts, forge.WithStalenessWindow(d))
	}

	return opts, nil
}
