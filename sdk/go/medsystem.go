// Package medsystem is a Go client for the clinic reminder service.
package medsystem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds the configuration for the medsystem client.
type Config struct {
	// BaseURL is the root URL of the server, e.g. "https://clinic.example.com".
	BaseURL string

	// CronSecret is sent as a bearer token to the cron endpoints when set.
	CronSecret string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with a 6 minute timeout is used, long enough
	// for a full reminder batch.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 6 * time.Minute}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// Client calls the medsystem HTTP API.
type Client struct {
	cfg Config
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// TriggerReminders asks the server to run today's reminder batch and returns
// its report. Each call sends the reminders again.
func (c *Client) TriggerReminders(ctx context.Context) (*ReminderReport, error) {
	body, err := c.get(ctx, "/api/cron/send-reminders", c.cfg.CronSecret)
	if err != nil {
		return nil, err
	}

	var report ReminderReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("medsystem: failed to parse report: %w", err)
	}
	return &report, nil
}

// Health returns the server's dependency status.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("medsystem: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("medsystem: request failed: %w", err)
	}
	defer resp.Body.Close()

	// 503 still carries a status body
	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("medsystem: failed to parse health: %w", err)
	}
	return &status, nil
}

func (c *Client) get(ctx context.Context, path, bearer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("medsystem: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("medsystem: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("medsystem: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}
