package devserver

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/MKhiriev/danmu-client/internal/app"
	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/internal/utils"
)

// newReverseProxy forwards requests to target, keeping the request path.
//
// With changeOrigin the outgoing Host header is the target's host; without
// it the browser's Host is passed through. Upstream failures are answered
// with a 502 envelope so the client pipeline reports them like any other
// backend error.
func newReverseProxy(target *url.URL, changeOrigin bool, log *logger.Logger) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if !changeOrigin {
				pr.Out.Host = pr.In.Host
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Error().
				Err(err).
				Str("target", target.String()).
				Str("path", r.URL.Path).
				Msg("proxy request failed")

			if _, writeErr := utils.WriteEnvelope(w, http.StatusBadGateway, app.MsgBadGateway); writeErr != nil {
				log.Error().Err(writeErr).Msg("failed to write proxy error response")
			}
		},
	}
}
