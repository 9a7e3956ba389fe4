package internal

import (
	"comms/domain"
	"comms/world"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendLoopback = "loopback"
	BackendAMQP     = "amqp"
)

var validate = validator.New()

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	LoopBufferSize  int           `env:"LOOP_BUFFER_SIZE,default=64" validate:"min=1"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s"`
	PendingTimeout  time.Duration `env:"PENDING_TIMEOUT,default=5s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	// BacklogThreshold is the loop queue length above which a warning is
	// logged every BacklogInterval. Zero disables the warning.
	BacklogThreshold int           `env:"BACKLOG_THRESHOLD,default=256"`
	BacklogInterval  time.Duration `env:"BACKLOG_INTERVAL,default=10s"`
	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LimitMessages    *int          `env:"LIMIT_MESSAGES"`

	Backend         string        `env:"BACKEND,default=loopback" validate:"oneof=loopback amqp"`
	AmqpURL         string        `env:"AMQP_URL" validate:"required_if=Backend amqp"`
	AmqpExchange    string        `env:"AMQP_EXCHANGE,default=world"`
	AmqpDialTimeout time.Duration `env:"AMQP_DIAL_TIMEOUT,default=5s"`

	Protocol    string `env:"PROTOCOL,default=jabber"`
	Username    string `env:"USERNAME,required=true"`
	Secret      string `env:"SECRET,required=true"`
	Server      string `env:"SERVER"`
	Peer        string `env:"PEER,required=true" validate:"required"`
	SessionKind string `env:"SESSION_KIND,default=private" validate:"oneof=private public"`
	// Echo makes the loopback backend answer every message it is sent.
	Echo bool `env:"LOOPBACK_ECHO,default=true"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Backend == BackendAMQP && c.Protocol != world.Protocol {
		return fmt.Errorf("invalid configuration: the amqp backend only speaks %q, got PROTOCOL=%q", world.Protocol, c.Protocol)
	}
	return nil
}

func (c Config) Credentials() domain.Credentials {
	return domain.Credentials{
		Protocol: c.Protocol,
		Username: c.Username,
		Secret:   c.Secret,
		Server:   c.Server,
	}
}

func (c Config) Kind() domain.SessionKind {
	if c.SessionKind == domain.PublicChannel.String() {
		return domain.PublicChannel
	}
	return domain.PrivateChat
}
