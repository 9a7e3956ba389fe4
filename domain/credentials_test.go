package domain

import (
	"comms/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate(t *testing.T) {
	req := require.New(t)

	valid := Credentials{Protocol: "jabber", Username: "alice", Secret: "secret"}
	req.NoError(valid.Validate())

	withServer := Credentials{Protocol: "jabber", Username: "alice", Secret: "secret", Server: "chat.example.org", Port: 5222}
	req.NoError(withServer.Validate())

	missingSecret := Credentials{Protocol: "jabber", Username: "alice"}
	req.ErrorIs(missingSecret.Validate(), errors.ErrInvalidCredentials)

	badPort := Credentials{Protocol: "jabber", Username: "alice", Secret: "secret", Port: 70000}
	req.ErrorIs(badPort.Validate(), errors.ErrInvalidCredentials)
}

func TestCredentials_String_Hides_Secret(t *testing.T) {
	req := require.New(t)
	c := Credentials{Protocol: "jabber", Username: "alice", Secret: "hunter2", Server: "chat.example.org"}

	req.NotContains(c.String(), "hunter2")
	req.Equal("jabber:alice@chat.example.org", c.String())
}
