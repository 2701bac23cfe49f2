package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jwebster45206/room-finder/internal/handlers"
	"github.com/jwebster45206/room-finder/pkg/building"
	"github.com/jwebster45206/room-finder/pkg/route"
)

// APIClient talks to the room finder HTTP API.
type APIClient struct {
	client  *http.Client
	baseURL string
}

func NewAPIClient(client *http.Client, baseURL string) *APIClient {
	return &APIClient{client: client, baseURL: baseURL}
}

func (c *APIClient) TestConnection() bool {
	resp, err := c.client.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

func (c *APIClient) Route(from, to string) (*route.Result, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)

	var res route.Result
	if err := c.get("/v1/route?"+q.Encode(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) Nearby(id, maxDistance string) ([]route.NearbyRoom, error) {
	path := "/v1/rooms/" + url.PathEscape(id) + "/nearby"
	if maxDistance != "" {
		path += "?max=" + url.QueryEscape(maxDistance)
	}

	var rooms []route.NearbyRoom
	if err := c.get(path, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *APIClient) Rooms(query string) ([]building.Summary, error) {
	path := "/v1/rooms"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var rooms []building.Summary
	if err := c.get(path, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *APIClient) get(path string, out any) error {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp handlers.ErrorResponse
		if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error == "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
		return fmt.Errorf("%s", errorResp.Error)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
