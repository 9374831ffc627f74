package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const entriesPath = "/api/passwords"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter]. The base
// URL is taken from adapterCfg.HTTPAddress ("http://" is assumed when no
// scheme is given). A non-empty appCfg.HashKey turns on the X-Payload-Hash
// header for entry writes.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", models.User{Email: user.Email, Password: user.Password})
}

// authenticate posts credentials to path and stores the session token from
// the response body, falling back to the Authorization header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	var body models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&body).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token := body.Token
	if token == "" {
		token, _ = utils.ParseBearerToken(resp.Header().Get("Authorization"))
	}
	if token == "" {
		return models.Token{}, errEmptyToken
	}

	h.SetToken(token)
	return models.Token{SignedString: token}, nil
}

func (h *httpServerAdapter) ListEntries(ctx context.Context) ([]models.VaultEntry, error) {
	var entries []models.VaultEntry

	resp, err := h.authedRequest(ctx).SetResult(&entries).Get(entriesPath)
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) GetEntry(ctx context.Context, id int64) (models.VaultEntry, error) {
	var entry models.VaultEntry

	resp, err := h.authedRequest(ctx).SetResult(&entry).Get(entryPath(id))
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("get entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	req, err := h.entryWrite(ctx, entry)
	if err != nil {
		return models.VaultEntry{}, err
	}

	var created models.VaultEntry
	resp, err := req.SetResult(&created).Post(entriesPath)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultEntry{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entry models.VaultEntry) error {
	req, err := h.entryWrite(ctx, entry)
	if err != nil {
		return err
	}

	resp, err := req.Put(entryPath(entry.ID))
	if err != nil {
		return fmt.Errorf("update entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(entryPath(id))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// entryWrite prepares an authenticated JSON request for entry, signed with
// the payload hash when hashing is enabled.
func (h *httpServerAdapter) entryWrite(ctx context.Context, entry models.VaultEntry) (*resty.Request, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry)

	if utils.HashingEnabled() {
		hash, err := utils.PayloadHash(entry.Payload())
		if err != nil {
			return nil, fmt.Errorf("hash entry payload: %w", err)
		}
		req.SetHeader(utils.PayloadHashHeader, hash)
	}

	return req, nil
}

func entryPath(id int64) string {
	return entriesPath + "/" + strconv.FormatInt(id, 10)
}
