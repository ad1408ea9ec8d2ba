package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	api "github.com/jobforge/status-board/api/v1alpha1"
)

// Client is a thin HTTP client for the status-board API.
type Client struct {
	baseUrl    string
	httpClient *http.Client
}

func New(baseUrl string) *Client {
	return &Client{
		baseUrl:    baseUrl,
		httpClient: &http.Client{},
	}
}

func (c *Client) ListJobTypes(ctx context.Context) (api.JobTypeList, error) {
	var jobTypes api.JobTypeList
	if err := c.get(ctx, "/api/v1/jobtypes", &jobTypes); err != nil {
		return nil, err
	}
	return jobTypes, nil
}

func (c *Client) GetJobType(ctx context.Context, id uuid.UUID) (*api.JobType, error) {
	var jobType api.JobType
	if err := c.get(ctx, fmt.Sprintf("/api/v1/jobtypes/%s", id), &jobType); err != nil {
		return nil, err
	}
	return &jobType, nil
}

func (c *Client) ListStatuses(ctx context.Context) (api.JobTypeSummaryList, error) {
	var summaries api.JobTypeSummaryList
	if err := c.get(ctx, "/api/v1/status", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *Client) GetJobTypeStatus(ctx context.Context, id uuid.UUID) (*api.JobTypeSummary, error) {
	var summary api.JobTypeSummary
	if err := c.get(ctx, fmt.Sprintf("/api/v1/jobtypes/%s/status", id), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiError api.Error
		if err := json.NewDecoder(resp.Body).Decode(&apiError); err == nil && apiError.Message != "" {
			return fmt.Errorf("GET %s: %s", path, apiError.Message)
		}
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
