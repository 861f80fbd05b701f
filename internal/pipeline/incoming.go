package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/danmu-client/internal/app"
	"github.com/MKhiriev/danmu-client/models"
	"github.com/go-resty/resty/v2"
)

// intercept is the incoming interceptor: transport failures first, then the
// envelope check.
func (p *Pipeline) intercept(ctx context.Context, resp *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return resp, p.rejectTransport(ctx, err)
	}

	if !resp.IsSuccess() {
		return resp, p.rejectTransport(ctx, &StatusError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.Body(),
		})
	}

	return p.checkEnvelope(resp)
}

func (p *Pipeline) checkEnvelope(resp *resty.Response) (*resty.Response, error) {
	env := decodeEnvelope(resp.Body())
	if env.OK() {
		return resp, nil
	}

	message := env.Message
	if message == "" {
		message = app.MsgOperationFailed
	}

	p.logger.Warn().
		Int("code", env.Code).
		Str("url", resp.Request.URL).
		Str("envelope_message", message).
		Msg("business error")

	p.notifier.Error(message)
	return resp, &Error{Message: message}
}

// decodeEnvelope reads body as an envelope without validating its shape.
// Fields of the wrong JSON type are left zero while the others are kept;
// a body that is not a JSON object yields the zero envelope, whose code is
// never 200.
func decodeEnvelope(body []byte) models.RawEnvelope {
	var env models.RawEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return models.RawEnvelope{}
		}
	}

	return env
}

// rejectTransport classifies a transport failure and runs its side effect.
// The returned error is always err itself, possibly joined with a failure of
// the side effect.
func (p *Pipeline) rejectTransport(ctx context.Context, err error) error {
	switch {
	case isUnauthorized(err):
		p.logger.Info().Err(err).Msg("session rejected by backend, logging out")
		return p.expireSession(ctx, err)
	case isTimeout(err):
		p.logger.Warn().Err(err).Msg("request timed out")
		p.notifier.Error(app.MsgRequestTimedOut)
	default:
		p.logger.Warn().Err(err).Msg("request failed")
		p.notifier.Error(transportMessage(err))
	}

	return err
}

// expireSession logs the session out and then, unless the login screen is
// already shown, navigates to it. Logout must finish before navigation
// starts. Both steps run detached from ctx cancellation so that an expiring
// request context cannot leave the session half torn down.
func (p *Pipeline) expireSession(ctx context.Context, err error) error {
	ctx = context.WithoutCancel(ctx)

	if logoutErr := p.session.Logout(ctx); logoutErr != nil {
		p.logger.Error().Err(logoutErr).Msg("logout after 401 failed")
		return errors.Join(err, fmt.Errorf("%w: %w", ErrSessionLogout, logoutErr))
	}

	if p.navigator.CurrentPath() == p.loginPath {
		return err
	}

	if navErr := p.navigator.Navigate(ctx, p.loginPath); navErr != nil {
		p.logger.Error().Err(navErr).Msg("redirect to login failed")
		return errors.Join(err, fmt.Errorf("%w: %w", ErrNavigation, navErr))
	}

	return err
}

func transportMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return app.MsgNetworkError
}
