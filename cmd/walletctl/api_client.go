package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/simbaid-sync/internal/handler/local"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

var errClientUnreachable = errors.New("sync client is not reachable")

// apiClient talks to the local status API of a running sync client.
type apiClient struct {
	http    *utils.HTTPClient
	address string
}

func newAPIClient(address string, timeout time.Duration) (*apiClient, error) {
	client, err := utils.NewBaseHTTPClient(address, timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid --addr: %w", err)
	}
	return &apiClient{http: client, address: address}, nil
}

func (c *apiClient) Status(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus
	return status, c.do(ctx, http.MethodGet, "/api/status", nil, &status)
}

func (c *apiClient) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	return info, c.do(ctx, http.MethodGet, "/api/version", nil, &info)
}

func (c *apiClient) Queue(ctx context.Context, state string) (local.QueueListing, error) {
	path := "/api/queue"
	if state != "" {
		path += "?state=" + state
	}
	var listing local.QueueListing
	return listing, c.do(ctx, http.MethodGet, path, nil, &listing)
}

func (c *apiClient) Sync(ctx context.Context) (models.SyncPassResult, error) {
	var result models.SyncPassResult
	return result, c.do(ctx, http.MethodPost, "/api/sync", nil, &result)
}

func (c *apiClient) RetryFailed(ctx context.Context) (models.SyncPassResult, error) {
	var result models.SyncPassResult
	return result, c.do(ctx, http.MethodPost, "/api/sync/retry", nil, &result)
}

func (c *apiClient) RetryFailedItem(ctx context.Context, id string) (models.SyncPassResult, error) {
	var result models.SyncPassResult
	return result, c.do(ctx, http.MethodPost, "/api/queue/failed/"+id+"/retry", nil, &result)
}

func (c *apiClient) ClearFailed(ctx context.Context) ([]string, error) {
	var result local.ClearResult
	return result.Removed, c.do(ctx, http.MethodPost, "/api/sync/clear", nil, &result)
}

func (c *apiClient) RemoveFailedItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/queue/failed/"+id, nil, nil)
}

func (c *apiClient) Enqueue(ctx context.Context, kind models.Kind, payload json.RawMessage) (models.QueueItem, error) {
	var item models.QueueItem
	return item, c.do(ctx, http.MethodPost, "/api/queue/"+kind.String(), payload, &item)
}

func (c *apiClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var apiErr utils.ErrorResponse

	req := c.http.R().SetContext(ctx).SetError(&apiErr)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w at %s: %w", errClientUnreachable, c.address, err)
	}
	if resp.IsError() {
		if apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (%d)", method, path, apiErr.Error, resp.StatusCode())
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status())
	}
	return nil
}
