package main

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

type Config struct {
	RelayAddr      string `envconfig:"RELAY_ADDR" default:"localhost:8080" validate:"required,hostname_port"`
	PlayerName     string `envconfig:"PLAYER_NAME" validate:"required,max=64"`
	InstrumentName string `envconfig:"INSTRUMENT_NAME" default:"keys" validate:"required,max=64"`
	// BADGER_FILEPATH left empty keeps the roster in memory
	BadgerFilepath string        `envconfig:"BADGER_FILEPATH"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	Colours        bool          `envconfig:"COLOURS" default:"true"`
	DialTimeout    time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s" validate:"gt=0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid player config: %w", err)
	}
	return cfg, nil
}
