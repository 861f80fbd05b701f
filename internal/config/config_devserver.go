package config

import "fmt"

// Dev server defaults, matching the front end's original dev setup.
const (
	DefaultDevServerAddress = "0.0.0.0:5173"
	DefaultProxyPrefix      = "/api"
	DefaultProxyTarget      = "http://localhost:8080"
)

// DevServerConfig is the development server configuration assembled from
// [StructuredConfig].
type DevServerConfig struct {
	// Address is the listen address.
	Address string
	// StaticDir is the built single-page app directory; empty disables
	// static serving.
	StaticDir string
	// ProxyPrefix is the path prefix forwarded to ProxyTarget.
	ProxyPrefix string
	// ProxyTarget is the backend origin.
	ProxyTarget string
	// ChangeOrigin rewrites the Host header of proxied requests to the
	// target's host.
	ChangeOrigin bool
	// LogLevel is the zerolog level name.
	LogLevel string
}

// GetDevServerConfig builds and validates the development server config view.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := newDevServerConfig(cfg)
	return devCfg, devCfg.validate()
}

func newDevServerConfig(cfg *StructuredConfig) *DevServerConfig {
	devCfg := &DevServerConfig{
		Address:      cfg.DevServer.Address,
		StaticDir:    cfg.DevServer.StaticDir,
		ProxyPrefix:  cfg.DevServer.ProxyPrefix,
		ProxyTarget:  cfg.DevServer.ProxyTarget,
		ChangeOrigin: !cfg.DevServer.PreserveHost,
		LogLevel:     cfg.Log.Level,
	}

	if devCfg.Address == "" {
		devCfg.Address = DefaultDevServerAddress
	}
	if devCfg.ProxyPrefix == "" {
		devCfg.ProxyPrefix = DefaultProxyPrefix
	}
	if devCfg.ProxyTarget == "" {
		devCfg.ProxyTarget = DefaultProxyTarget
	}

	return devCfg
}
