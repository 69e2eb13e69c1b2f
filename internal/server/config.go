package server

import (
	"net"
	"strconv"

	"github.com/lambda-feedback/simpleweb/util/conf"
)

type HttpConfig struct {
	// Host is the interface to bind, empty for all interfaces.
	Host string `conf:"host"`

	// Port is the TCP port to bind, 0 picks a free port.
	Port int `conf:"port"`

	// H2c enables HTTP/2 cleartext upgrade.
	H2c bool `conf:"h2c"`
}

// DefaultConfig listens on port 8080 across all local interfaces.
var DefaultConfig = conf.DefaultConfig{
	"host": "",
	"port": 8080,
	"h2c":  false,
}

func (c HttpConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
