package main

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

// Config of an offline rehearsal: every player lives in this process.
type Config struct {
	Players         []string      `envconfig:"REHEARSAL_PLAYERS" default:"alice,bob" validate:"min=2,dive,required,max=64"`
	Phrase          []string      `envconfig:"REHEARSAL_PHRASE" default:"C4,E4,G4" validate:"min=1,dive,required"`
	Tempo           time.Duration `envconfig:"TEMPO" default:"250ms"`
	InboxSize       int           `envconfig:"INBOX_SIZE" default:"64" validate:"min=1"`
	RestartInterval time.Duration `envconfig:"RESTART_INTERVAL" default:"1s" validate:"gt=0"`
	MonitorInterval time.Duration `envconfig:"MONITOR_INTERVAL" default:"1s" validate:"gt=0"`
	DrainTimeout    time.Duration `envconfig:"DRAIN_TIMEOUT" default:"5s" validate:"gt=0"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Colours         bool          `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid rehearsal config: %w", err)
	}
	return cfg, nil
}
