package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var ErrTimeout error = errors.New("completion request timed out")
var ErrBadStatus error = errors.New("completion service returned an error status")

const requestTimeout = 30 * time.Second

const systemPrompt = "You are a professional English educator. Analyze English vocabulary accurately and in detail."

// Client talks to the external text-generation proxy. The proxy accepts a
// bare JSON array of chat messages and answers in the OpenAI chat shape.
type Client struct {
	logs       *zap.SugaredLogger
	apiURL     string
	httpClient *http.Client
}

func NewClient(logger *zap.SugaredLogger, apiURL string) *Client {
	return &Client{
		logs:   logger,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// URL returns the configured endpoint, exposed for the health report.
func (c *Client) URL() string {
	return c.apiURL
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("marshal messages: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response contains no choices")
	}

	content := parsed.Choices[0].Message.Content
	c.logs.Infow("completion received", "chars", len(content))
	return content, nil
}
