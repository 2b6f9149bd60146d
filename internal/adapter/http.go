package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/dkotenko/abook/internal/config"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/models"
)

type httpChannel struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPChannel constructs an HTTP/REST implementation of [Channel]. It
// normalises and validates the base URL from cfg.HTTPAddress and configures
// the underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPChannel(cfg config.Adapter, log *logger.Logger) (Channel, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	ch := &httpChannel{client: client, logger: log}
	ch.SetToken(cfg.AuthToken)
	return ch, nil
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

// SetToken implements [Channel]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpChannel) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [Channel].
func (h *httpChannel) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpChannel) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Search implements [Channel]. It POSTs the query to /api/contacts/search
// and returns one result page.
func (h *httpChannel) Search(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error) {
	if err := h.ensureToken(); err != nil {
		return models.SearchResponse{}, err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/contacts/search")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	var out models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SearchResponse{}, fmt.Errorf("search decode response: %w", err)
	}
	return out, nil
}

// GetContacts implements [Channel]. It POSTs the id list to
// /api/contacts/get and returns the full wire records the server still
// knows about.
func (h *httpChannel) GetContacts(ctx context.Context, ids []string) ([]models.WireContact, error) {
	if err := h.ensureToken(); err != nil {
		return nil, err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string][]string{"ids": ids}).
		Post("/api/contacts/get")
	if err != nil {
		return nil, fmt.Errorf("get contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out struct {
		Contacts []models.WireContact `json:"cn"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("get contacts decode response: %w", err)
	}
	return out.Contacts, nil
}

// CreateContact implements [Channel].
func (h *httpChannel) CreateContact(ctx context.Context, c models.WireContact) (models.WireContact, error) {
	if err := h.ensureToken(); err != nil {
		return models.WireContact{}, err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		Post("/api/contacts/create")
	if err != nil {
		return models.WireContact{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WireContact{}, err
	}

	var out models.WireContact
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.WireContact{}, fmt.Errorf("create contact decode response: %w", err)
	}
	return out, nil
}

// ContactAction implements [Channel]. One batched operation, one request.
func (h *httpChannel) ContactAction(ctx context.Context, req models.ContactActionRequest) error {
	if err := h.ensureToken(); err != nil {
		return err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/contacts/action")
	if err != nil {
		return fmt.Errorf("contact action %s request: %w", req.Op, err)
	}
	return mapHTTPError(resp)
}

// CreateFolder implements [Channel].
func (h *httpChannel) CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.WireFolder, error) {
	if err := h.ensureToken(); err != nil {
		return models.WireFolder{}, err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/folders/create")
	if err != nil {
		return models.WireFolder{}, fmt.Errorf("create folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WireFolder{}, err
	}

	var out models.WireFolder
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.WireFolder{}, fmt.Errorf("create folder decode response: %w", err)
	}
	return out, nil
}

// FolderAction implements [Channel].
func (h *httpChannel) FolderAction(ctx context.Context, req models.FolderActionRequest) error {
	if err := h.ensureToken(); err != nil {
		return err
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/folders/action")
	if err != nil {
		return fmt.Errorf("folder action %s request: %w", req.Op, err)
	}
	return mapHTTPError(resp)
}

// GetFolderTree implements [Channel]. It returns the account root node
// with its recursive subtree.
func (h *httpChannel) GetFolderTree(ctx context.Context) (models.WireFolder, error) {
	if err := h.ensureToken(); err != nil {
		return models.WireFolder{}, err
	}

	resp, err := h.request(ctx).Get("/api/folders/tree")
	if err != nil {
		return models.WireFolder{}, fmt.Errorf("get folder tree request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WireFolder{}, err
	}

	var out models.WireFolder
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.WireFolder{}, fmt.Errorf("get folder tree decode response: %w", err)
	}
	return out, nil
}

// GetDistributionListMembers implements [Channel].
func (h *httpChannel) GetDistributionListMembers(ctx context.Context, id string, limit, offset int) ([]models.WireContact, bool, error) {
	if err := h.ensureToken(); err != nil {
		return nil, false, err
	}

	resp, err := h.request(ctx).
		SetQueryParams(map[string]string{
			"limit":  strconv.Itoa(limit),
			"offset": strconv.Itoa(offset),
		}).
		Get("/api/dl/" + url.PathEscape(id) + "/members")
	if err != nil {
		return nil, false, fmt.Errorf("get dl members request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, false, err
	}

	var out struct {
		Members []models.WireContact `json:"dlm"`
		More    bool                 `json:"more"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, false, fmt.Errorf("get dl members decode response: %w", err)
	}
	return out.Members, out.More, nil
}
