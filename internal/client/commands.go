package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/danmu-client/internal/pipeline"
	"github.com/MKhiriev/danmu-client/internal/router"
)

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: login <token>", ErrUsage)
	}

	if err := a.session.SetToken(args[0]); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := a.navigator.Navigate(ctx, router.RootPath); err != nil {
		return err
	}

	a.printf("logged in\n")
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.printf("logged out\n")
	return nil
}

func (a *App) whoami() error {
	if a.session.Token() == "" {
		return ErrNotLoggedIn
	}

	claims, err := a.session.Claims()
	if err != nil {
		a.logger.Debug().Err(err).Msg("token carries no readable claims")
		a.printf("logged in with an opaque token\n")
		return nil
	}

	if claims.Subject != "" {
		a.printf("subject: %s\n", claims.Subject)
	}
	if claims.Email != "" {
		a.printf("email:   %s\n", claims.Email)
	}

	exp := claims.ExpiresAtTime()
	switch {
	case exp.IsZero():
		a.printf("expires: never\n")
	case claims.Expired(time.Now()):
		a.printf("expires: %s (expired)\n", exp.Local().Format(time.RFC3339))
	default:
		a.printf("expires: %s\n", exp.Local().Format(time.RFC3339))
	}

	return nil
}

// request sends an arbitrary call through the pipeline and prints the
// envelope data. Failures were already shown by the pipeline's notifier, so
// they are only returned for the exit status.
func (a *App) request(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: request <METHOD> <PATH> [JSON body]", ErrUsage)
	}

	method := strings.ToUpper(args[0])
	if _, ok := allowedMethods[method]; !ok {
		return fmt.Errorf("%w: unsupported method %q", ErrUsage, args[0])
	}

	path := args[1]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req := a.api.R(ctx)
	if len(args) == 3 {
		body := []byte(args[2])
		if !json.Valid(body) {
			return ErrInvalidBody
		}
		req.SetBody(json.RawMessage(body))
	}

	resp, err := a.api.Do(req, method, path)
	if err != nil {
		a.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return err
	}

	data, err := pipeline.Data[json.RawMessage](resp)
	if err != nil {
		return err
	}

	a.printf("%s\n", indentJSON(data))
	return nil
}

func indentJSON(data json.RawMessage) string {
	if len(bytes.TrimSpace(data)) == 0 {
		return "null"
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

func (a *App) version() {
	if _, err := a.buildInfo.WriteTo(a.out); err != nil {
		a.logger.Error().Err(err).Msg("failed to write build info")
	}
}
