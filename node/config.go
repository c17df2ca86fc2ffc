package node

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RPCHost        string `envconfig:"NODE_RPC_HOST" default:"127.0.0.1:18443"`
	RPCUser        string `envconfig:"NODE_RPC_USER" required:"true"`
	RPCPassword    string `envconfig:"NODE_RPC_PASSWORD" required:"true"`
	ConnectRetries int    `envconfig:"NODE_CONNECT_RETRIES" default:"5"`
	AddressAccount string `envconfig:"NODE_ADDRESS_ACCOUNT" default:""`
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
