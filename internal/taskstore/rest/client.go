package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"taskpulse/internal/model"
	"taskpulse/internal/taskstore"
	"taskpulse/pkg/log"
)

// Repository fetches tasks from the upstream task API over REST.
// The bearer token rides on the oauth2 transport, so no call site ever
// sets an Authorization header by hand.
type Repository struct {
	baseURL    string
	httpClient *http.Client
	l          log.Logger
}

var _ taskstore.Repository = (*Repository)(nil)

// New creates a task repository against the given base URL.
func New(baseURL, accessToken string, timeout time.Duration, l log.Logger) *Repository {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(context.Background(), src)
	client.Timeout = timeout

	return &Repository{
		baseURL:    baseURL,
		httpClient: client,
		l:          l,
	}
}

// ListTasks fetches the task collection for the given view via
// GET /api/v1/tasks.
func (r *Repository) ListTasks(ctx context.Context, opt taskstore.ListTasksOptions) ([]model.Task, error) {
	q := url.Values{}
	if opt.View != "" {
		q.Set("view", string(opt.View))
	}
	if opt.UserID != "" {
		q.Set("user_id", opt.UserID)
	}

	endpoint := fmt.Sprintf("%s/api/v1/tasks", r.baseURL)
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("task API list error %d: %s", resp.StatusCode, string(raw))
	}

	var listResp struct {
		Tasks []taskRecord `json:"tasks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode task list response: %w", err)
	}

	return r.toTasks(ctx, listResp.Tasks), nil
}
