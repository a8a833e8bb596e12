// Package adapter implements the HTTP client side of the ArraBoard API
// with resty. It satisfies record.RemoteClient for the remote-mode store
// and adds the auth, file and stats calls the TUI needs.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/arraboard/arraboard/internal/logger"
	"github.com/arraboard/arraboard/internal/record"
	"github.com/arraboard/arraboard/models"
)

var _ record.RemoteClient = (*ServerAdapter)(nil)

// ServerAdapter talks to one ArraBoard server and holds the session token
// after a successful login or registration.
type ServerAdapter struct {
	client *resty.Client
	token  string
	logger *logger.Logger
}

// NewServerAdapter builds an adapter for the server at baseURL. A missing
// scheme defaults to http.
func NewServerAdapter(baseURL string, timeout time.Duration, log *logger.Logger) *ServerAdapter {
	client := resty.New().
		SetBaseURL(normalizeBaseURL(baseURL)).
		SetTimeout(timeout)

	return &ServerAdapter{client: client, logger: log}
}

func normalizeBaseURL(baseURL string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return trimmed
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	return trimmed
}

// Token returns the current session token, empty before login.
func (a *ServerAdapter) Token() string {
	return a.token
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and stores the session token the server
// issues alongside it.
func (a *ServerAdapter) Register(ctx context.Context, login, name, password string) error {
	var body tokenResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(models.User{Login: login, Name: name, Password: password}).
		SetResult(&body).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("%w: register: %v", record.ErrStorage, err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("%w: register: server answered %s", record.ErrStorage, resp.Status())
	}

	a.token = body.Token
	a.logger.Info().Str("login", login).Msg("registered")
	return nil
}

// Login authenticates and stores the session token.
func (a *ServerAdapter) Login(ctx context.Context, login, password string) error {
	var body tokenResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(models.User{Login: login, Password: password}).
		SetResult(&body).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("%w: login: %v", record.ErrStorage, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("%w: wrong login or password", record.ErrNotAuthenticated)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: login: server answered %s", record.ErrStorage, resp.Status())
	}

	a.token = body.Token
	a.logger.Info().Str("login", login).Msg("logged in")
	return nil
}

// errorFromStatus maps a non-2xx response onto the record sentinels.
func errorFromStatus(operation string, resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", record.ErrNotAuthenticated, operation)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", record.ErrNotFound, operation)
	default:
		return fmt.Errorf("%w: %s: server answered %s", record.ErrStorage, operation, resp.Status())
	}
}

func (a *ServerAdapter) authorized(ctx context.Context) *resty.Request {
	return a.client.R().SetContext(ctx).SetAuthToken(a.token)
}

// ListRecords fetches every record of the collection.
func (a *ServerAdapter) ListRecords(ctx context.Context, collection string) ([]models.RecordEnvelope, error) {
	var envelopes []models.RecordEnvelope
	resp, err := a.authorized(ctx).
		SetResult(&envelopes).
		Get("/api/records/" + collection)
	if err != nil {
		return nil, fmt.Errorf("%w: list %q: %v", record.ErrStorage, collection, err)
	}
	if resp.IsError() {
		return nil, errorFromStatus("list "+collection, resp)
	}
	return envelopes, nil
}

// GetRecord fetches one record.
func (a *ServerAdapter) GetRecord(ctx context.Context, collection, id string) (models.RecordEnvelope, error) {
	var env models.RecordEnvelope
	resp, err := a.authorized(ctx).
		SetResult(&env).
		Get("/api/records/" + collection + "/" + id)
	if err != nil {
		return models.RecordEnvelope{}, fmt.Errorf("%w: get %q: %v", record.ErrStorage, id, err)
	}
	if resp.IsError() {
		return models.RecordEnvelope{}, errorFromStatus("get "+id, resp)
	}
	return env, nil
}

// CreateRecord stores a new record.
func (a *ServerAdapter) CreateRecord(ctx context.Context, env models.RecordEnvelope) (models.RecordEnvelope, error) {
	var created models.RecordEnvelope
	resp, err := a.authorized(ctx).
		SetBody(env).
		SetResult(&created).
		Post("/api/records/" + env.Collection)
	if err != nil {
		return models.RecordEnvelope{}, fmt.Errorf("%w: create in %q: %v", record.ErrStorage, env.Collection, err)
	}
	if resp.IsError() {
		return models.RecordEnvelope{}, errorFromStatus("create in "+env.Collection, resp)
	}
	return created, nil
}

// UpdateRecord replaces the payload of an existing record.
func (a *ServerAdapter) UpdateRecord(ctx context.Context, env models.RecordEnvelope) (models.RecordEnvelope, error) {
	var updated models.RecordEnvelope
	resp, err := a.authorized(ctx).
		SetBody(env).
		SetResult(&updated).
		Put("/api/records/" + env.Collection + "/" + env.ID)
	if err != nil {
		return models.RecordEnvelope{}, fmt.Errorf("%w: update %q: %v", record.ErrStorage, env.ID, err)
	}
	if resp.IsError() {
		return models.RecordEnvelope{}, errorFromStatus("update "+env.ID, resp)
	}
	return updated, nil
}

// DeleteRecord removes a record; missing ids succeed.
func (a *ServerAdapter) DeleteRecord(ctx context.Context, collection, id string) error {
	resp, err := a.authorized(ctx).
		Delete("/api/records/" + collection + "/" + id)
	if err != nil {
		return fmt.Errorf("%w: delete %q: %v", record.ErrStorage, id, err)
	}
	if resp.IsError() {
		return errorFromStatus("delete "+id, resp)
	}
	return nil
}

// UploadFileContent sends raw file content for a file record.
func (a *ServerAdapter) UploadFileContent(ctx context.Context, id string, content []byte) error {
	resp, err := a.authorized(ctx).
		SetBody(content).
		Post("/api/files/" + id + "/content")
	if err != nil {
		return fmt.Errorf("%w: upload %q: %v", record.ErrStorage, id, err)
	}
	if resp.IsError() {
		return errorFromStatus("upload "+id, resp)
	}
	return nil
}

// DownloadFileContent fetches the raw content of a file record.
func (a *ServerAdapter) DownloadFileContent(ctx context.Context, id string) ([]byte, error) {
	resp, err := a.authorized(ctx).
		Get("/api/files/" + id + "/content")
	if err != nil {
		return nil, fmt.Errorf("%w: download %q: %v", record.ErrStorage, id, err)
	}
	if resp.IsError() {
		return nil, errorFromStatus("download "+id, resp)
	}
	return resp.Body(), nil
}

// DeleteFileContent removes stored content of a file record.
func (a *ServerAdapter) DeleteFileContent(ctx context.Context, id string) error {
	resp, err := a.authorized(ctx).
		Delete("/api/files/" + id + "/content")
	if err != nil {
		return fmt.Errorf("%w: delete content %q: %v", record.ErrStorage, id, err)
	}
	if resp.IsError() {
		return errorFromStatus("delete content "+id, resp)
	}
	return nil
}

// Stats fetches the per-collection record counts.
func (a *ServerAdapter) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	resp, err := a.authorized(ctx).
		SetResult(&stats).
		Get("/api/stats")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("%w: stats: %v", record.ErrStorage, err)
	}
	if resp.IsError() {
		return models.DashboardStats{}, errorFromStatus("stats", resp)
	}
	return stats, nil
}
