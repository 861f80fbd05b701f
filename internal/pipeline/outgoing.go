package pipeline

import (
	"github.com/MKhiriev/danmu-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

// attachCredential is the outgoing interceptor. The token is read from the
// session store on every send, so a token refreshed after the pipeline was
// built is always the one used. A missing token is not an error: the
// request simply goes out unauthenticated.
func (p *Pipeline) attachCredential(_ *resty.Client, r *resty.Request) error {
	if token := p.session.Token(); token != "" {
		r.SetAuthToken(token)
	}

	if r.Header.Get(utils.TraceIDHeader) == "" {
		traceID, ok := utils.GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = utils.NewTraceID()
		}
		r.SetHeader(utils.TraceIDHeader, traceID)
	}

	return nil
}

func (p *Pipeline) logResponse(_ *resty.Client, resp *resty.Response) error {
	p.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Msg("api response")

	return nil
}
