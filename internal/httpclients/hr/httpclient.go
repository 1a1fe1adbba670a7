package hr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sitesafe/violations/internal/entity"
)

type Client struct {
	client *http.Client
	url    string
}

func NewClient(url string) *Client {
	const (
		timeout       = time.Second * 5
		retryAttempts = 3
	)

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryAttempts
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.HTTPClient.Timeout = timeout
	retryClient.Logger = nil

	return &Client{
		client: retryClient.StandardClient(),
		url:    url,
	}
}

type workerInfo struct {
	EmployeeID string `json:"employeeId"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
	Active     bool   `json:"active"`
}

type activeWorkersResponse struct {
	Workers []workerInfo `json:"workers"`
}

// ActiveWorkers fetches the current roster snapshot from the HR service.
func (c *Client) ActiveWorkers(ctx context.Context) ([]entity.Worker, error) {
	url := c.url + "/api/workers?active=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var body activeWorkersResponse

	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	workers := make([]entity.Worker, 0, len(body.Workers))

	for _, w := range body.Workers {
		workers = append(workers, entity.Worker{
			EmployeeID: w.EmployeeID,
			FullName:   w.FullName,
			Department: w.Department,
			Active:     w.Active,
		})
	}

	return workers, nil
}
