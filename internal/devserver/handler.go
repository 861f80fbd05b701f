package devserver

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/MKhiriev/danmu-client/internal/config"
	"github.com/MKhiriev/danmu-client/internal/logger"
)

// Handler holds the dev server's routes.
type Handler struct {
	proxyPrefix string
	proxy       *httputil.ReverseProxy
	static      http.Handler

	logger *logger.Logger
}

// NewHandler builds the proxy and static handlers described by cfg.
func NewHandler(cfg *config.DevServerConfig, logger *logger.Logger) (*Handler, error) {
	target, err := url.Parse(cfg.ProxyTarget)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxyTarget, cfg.ProxyTarget)
	}

	prefix := "/" + strings.Trim(cfg.ProxyPrefix, "/")

	logger.Info().
		Str("prefix", prefix).
		Str("target", target.String()).
		Bool("change_origin", cfg.ChangeOrigin).
		Str("static_dir", cfg.StaticDir).
		Msg("dev server handler created")

	return &Handler{
		proxyPrefix: prefix,
		proxy:       newReverseProxy(target, cfg.ChangeOrigin, logger),
		static:      newSPAHandler(cfg.StaticDir),
		logger:      logger,
	}, nil
}
