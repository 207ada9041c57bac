package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)

	req.NoError(err)
	req.Equal("localhost", config.Host)
	req.Equal(8080, config.Port)
	req.Equal("INFO", config.LogLevel)
	req.Equal(256, config.OutboxSize)
	req.Equal(5*time.Second, config.ShutdownTimeout)
	req.NoError(config.Validate())
}

func TestConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{"PORT": "9090", "OUTBOX_SIZE": "8", "LOG_LEVEL": "DEBUG"}, &config)

	req.NoError(err)
	req.Equal(9090, config.Port)
	req.Equal(8, config.OutboxSize)
	req.NoError(config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)

	req.Error(Config{Host: "localhost", Port: 0, LogLevel: "INFO", OutboxSize: 1}.Validate())
	req.Error(Config{Host: "localhost", Port: 8080, LogLevel: "LOUD", OutboxSize: 1}.Validate())
	req.Error(Config{Host: "localhost", Port: 8080, LogLevel: "INFO", OutboxSize: 0}.Validate())
}
