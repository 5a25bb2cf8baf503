package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Forge     ForgeConfig      `json:"forge"`
	Cache     CacheConfig      `json:"cache"`
	Nats      NatsConfig       `json:"nats"`
	Listeners []ListenerConfig `json:"listeners"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Forge.validate())
	el.Add(c.Cache.validate())
	el.Add(c.Nats.validate())

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	return el.Err()
}
