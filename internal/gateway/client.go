package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Nosdarm/rpg-sub000/internal/errors"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// Client talks to the generation backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client for the backend at baseURL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Trigger(ctx context.Context, guildID string, req *models.TriggerRequest) (*models.PendingGeneration, error) {
	var g models.PendingGeneration
	path := fmt.Sprintf("/api/guilds/%s/generations", url.PathEscape(guildID))
	if err := c.do(ctx, http.MethodPost, path, req, &g); err != nil {
		return nil, apperrors.Gatewayf("trigger", err)
	}
	return &g, nil
}

func (c *Client) List(ctx context.Context, guildID string, status models.GenerationStatus, page, pageSize int) (*models.PendingGenerationPage, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var result models.PendingGenerationPage
	path := fmt.Sprintf("/api/guilds/%s/generations?%s", url.PathEscape(guildID), q.Encode())
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apperrors.Gatewayf("list", err)
	}
	return &result, nil
}

func (c *Client) GetByID(ctx context.Context, guildID, id string) (*models.PendingGeneration, error) {
	var g models.PendingGeneration
	path := fmt.Sprintf("/api/guilds/%s/generations/%s", url.PathEscape(guildID), url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, &g); err != nil {
		return nil, apperrors.Gatewayf("get", err)
	}
	return &g, nil
}

func (c *Client) Approve(ctx context.Context, guildID, id, masterID string) (*models.PendingGeneration, error) {
	var g models.PendingGeneration
	path := fmt.Sprintf("/api/guilds/%s/generations/%s/approve", url.PathEscape(guildID), url.PathEscape(id))
	if err := c.do(ctx, http.MethodPost, path, &models.ApproveRequest{MasterID: masterID}, &g); err != nil {
		return nil, apperrors.Gatewayf("approve", err)
	}
	return &g, nil
}

func (c *Client) Update(ctx context.Context, guildID, id string, req *models.UpdateRequest) (*models.PendingGeneration, error) {
	var g models.PendingGeneration
	path := fmt.Sprintf("/api/guilds/%s/generations/%s", url.PathEscape(guildID), url.PathEscape(id))
	if err := c.do(ctx, http.MethodPut, path, req, &g); err != nil {
		return nil, apperrors.Gatewayf("update", err)
	}
	return &g, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

var _ Gateway = (*Client)(nil)
