package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// MESSAGER_ADDR is the gRPC address of a running server; the suite is skipped without it
	MessagerAddr string `envconfig:"MESSAGER_ADDR"`
	GatewayURL   string `envconfig:"GATEWAY_URL"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
