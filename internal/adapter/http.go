// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register and returns the created account.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. The token is taken from the
// Authorization header and falls back to the body's token field.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&login).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		login.Token = token
	}
	if login.Token == "" {
		return models.LoginResponse{}, ErrMissingToken
	}

	h.logger.Debug().Str("func", "httpServerAdapter.Login").Int64("id", login.UserID).Msg("logged in")
	return login, nil
}

func (h *httpServerAdapter) ListEntries(ctx context.Context, token string) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)

	resp, err := h.authedRequest(ctx, token).
		SetResult(&entries).
		Get("/api/entries/")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, token string, req models.EntryRequest) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&entry).
		Post("/api/entries/")
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) GetEntry(ctx context.Context, token string, entryID int64) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", strconv.FormatInt(entryID, 10)).
		SetResult(&entry).
		Get("/api/entries/{id}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, token string, entryID int64, req models.EntryRequest) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", strconv.FormatInt(entryID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&entry).
		Put("/api/entries/{id}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, token string, entryID int64) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", strconv.FormatInt(entryID, 10)).
		Delete("/api/entries/{id}")
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return info.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}
