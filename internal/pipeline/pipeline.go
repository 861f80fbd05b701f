// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/danmu-client/internal/app"
	"github.com/MKhiriev/danmu-client/internal/config"
	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/internal/utils"
	"github.com/MKhiriev/danmu-client/models"
	"github.com/go-resty/resty/v2"
)

// Dependencies are the collaborators a [Pipeline] consumes.
type Dependencies struct {
	Session   SessionStore
	Navigator Navigator
	Notifier  Notifier
}

// Pipeline wraps a resty client with credential injection and response
// interception. It is safe for concurrent use; all configuration is fixed
// at construction.
type Pipeline struct {
	client *utils.HTTPClient

	session   SessionStore
	navigator Navigator
	notifier  Notifier

	loginPath string

	logger *logger.Logger
}

// New constructs the application's Pipeline.
//
// The base URL comes from cfg and must be absolute. The request timeout
// defaults to [config.DefaultRequestTimeout] (50s) and the Content-Type
// header to [config.DefaultContentType] when cfg leaves them empty. Extra
// opts are applied to the underlying client after that, which is how tests
// swap the transport.
func New(cfg config.ClientAPI, deps Dependencies, log *logger.Logger, opts ...utils.HTTPClientOption) (*Pipeline, error) {
	if deps.Session == nil || deps.Navigator == nil || deps.Notifier == nil {
		return nil, ErrMissingDependency
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	contentType := cfg.ContentType
	if contentType == "" {
		contentType = config.DefaultContentType
	}

	if log == nil {
		log = logger.Nop()
	}

	clientOpts := append([]utils.HTTPClientOption{
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(timeout),
		utils.WithHeader("Content-Type", contentType),
	}, opts...)

	p := &Pipeline{
		client:    utils.NewHTTPClient(clientOpts...),
		session:   deps.Session,
		navigator: deps.Navigator,
		notifier:  deps.Notifier,
		loginPath: app.LoginPath,
		logger:    log,
	}

	p.client.
		OnBeforeRequest(p.attachCredential).
		OnAfterResponse(p.logResponse)

	return p, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// R returns a new request bound to ctx. Configure it with the usual resty
// setters and run it with [Pipeline.Do].
func (p *Pipeline) R(ctx context.Context) *resty.Request {
	return p.client.R().SetContext(ctx)
}

// Do executes req and runs the response interception.
//
// On business success the full response is returned unchanged. On failure
// the response, if one was received, is returned alongside either an
// [*Error] (envelope code not 200) or the original transport error.
func (p *Pipeline) Do(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	return p.intercept(req.Context(), resp, err)
}

// Get is a shorthand for a GET through [Pipeline.Do].
func (p *Pipeline) Get(ctx context.Context, path string) (*resty.Response, error) {
	return p.Do(p.R(ctx), http.MethodGet, path)
}

// Post is a shorthand for a POST of body through [Pipeline.Do].
func (p *Pipeline) Post(ctx context.Context, path string, body any) (*resty.Response, error) {
	return p.Do(p.R(ctx).SetBody(body), http.MethodPost, path)
}

// Put is a shorthand for a PUT of body through [Pipeline.Do].
func (p *Pipeline) Put(ctx context.Context, path string, body any) (*resty.Response, error) {
	return p.Do(p.R(ctx).SetBody(body), http.MethodPut, path)
}

// Delete is a shorthand for a DELETE through [Pipeline.Do].
func (p *Pipeline) Delete(ctx context.Context, path string) (*resty.Response, error) {
	return p.Do(p.R(ctx), http.MethodDelete, path)
}

// Data decodes the envelope payload of a successful response into T.
func Data[T any](resp *resty.Response) (T, error) {
	var env models.Envelope[T]
	if resp == nil {
		return env.Data, fmt.Errorf("decode envelope data: nil response")
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return env.Data, fmt.Errorf("decode envelope data: %w", err)
	}

	return env.Data, nil
}
