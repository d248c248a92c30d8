package msegat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// postJSON performs one request/response round trip: marshal the payload,
// POST it to the endpoint, read the whole body and decode it as JSON.
// A single attempt, no status-code inspection, no retry.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload interface{}) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("problem with request: %w", err)
	}

	requestID := uuid.NewString()
	url := c.baseURL + endpoint

	// Credentials travel in the body; only the endpoint is logged.
	c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"endpoint":   endpoint,
	}).Debug("sending gateway request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("problem with request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("problem with request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("problem with request: %w", err)
	}

	var parsed Response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("problem with request: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
	}).Debug("gateway response received")

	return parsed, nil
}
