package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mkhayatov/go-user-manager/internal/config"
	"github.com/mkhayatov/go-user-manager/internal/logger"
	"github.com/mkhayatov/go-user-manager/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpUserCollection struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPUserCollection constructs an HTTP/REST implementation of
// [UserCollection]. It normalises and validates the base resource URL from
// adapterCfg.CollectionURL and configures the underlying resty client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.CollectionURL is empty or cannot be parsed
// as a valid URL.
func NewHTTPUserCollection(adapterCfg config.ClientAdapter, logger *logger.Logger) (UserCollection, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CollectionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid collection url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpUserCollection{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// List implements [UserCollection]. It GETs the base resource and decodes
// the response body into a slice of [models.User]. Returns an error if the
// request, the status mapping, or the JSON decoding fails.
func (h *httpUserCollection) List(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users list: %w", err)
	}

	return users, nil
}

// Create implements [UserCollection]. It POSTs the record to the base
// resource and returns the server's representation of the stored record.
func (h *httpUserCollection) Create(ctx context.Context, user models.User) (models.User, error) {
	var stored models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&stored).
		Post("")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return stored, nil
}

// Update implements [UserCollection]. It PUTs the full record body to
// {base}/{id} and returns the server's representation of the stored record.
func (h *httpUserCollection) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	var stored models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&stored).
		Put(fmt.Sprintf("/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return stored, nil
}

// Delete implements [UserCollection]. It sends DELETE {base}/{id}; no
// response body is expected.
func (h *httpUserCollection) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/%d", id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
