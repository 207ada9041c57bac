package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config of the relay server, read from the environment.
type Config struct {
	Host            string        `env:"HOST,default=localhost" validate:"required"`
	Port            int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	OutboxSize      int           `env:"OUTBOX_SIZE,default=256" validate:"min=1"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}
