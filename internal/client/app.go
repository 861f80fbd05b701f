// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/danmu-client/internal/app"
	log "github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/models"
)

const usage = `usage: danmu [flags] <command>

commands:
  login <token>                      store a bearer token
  logout                             forget the stored token
  whoami                             show who the stored token belongs to
  request <METHOD> <PATH> [JSON]     call the backend and print the envelope data
  version                            show build information
`

// App is the command-line client.
type App struct {
	api       API
	session   Session
	navigator Navigator
	buildInfo models.AppBuildInfo

	out    io.Writer
	logger *log.Logger
}

// NewApp wires the client commands to their collaborators. Command output
// goes to out, or os.Stdout when out is nil.
func NewApp(api API, session Session, navigator Navigator, buildInfo models.AppBuildInfo, out io.Writer, logger *log.Logger) (*App, error) {
	if api == nil || session == nil || navigator == nil {
		return nil, errors.New("client app: missing dependency")
	}
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.Nop()
	}

	return &App{
		api:       api,
		session:   session,
		navigator: navigator,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}, nil
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("%s", usage)
		return ErrUsage
	}

	command, rest := strings.ToLower(args[0]), args[1:]
	a.logger.Debug().Str("command", command).Int("args", len(rest)).Msg("running command")

	var err error
	switch command {
	case "login":
		err = a.login(ctx, rest)
	case "logout":
		err = a.logout(ctx)
	case "whoami":
		err = a.whoami()
	case "request":
		err = a.request(ctx, rest)
	case "version":
		a.version()
	case "help", "-h", "--help":
		a.printf("%s", usage)
	default:
		a.printf("%s", usage)
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if err != nil && a.navigator.CurrentPath() == app.LoginPath {
		a.printf("session expired, run `danmu login <token>` to sign in again\n")
	}

	return err
}

func (a *App) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(a.out, format, args...); err != nil {
		a.logger.Error().Err(err).Msg("failed to write command output")
	}
}
