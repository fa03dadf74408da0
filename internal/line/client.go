package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.line.me"

var defaultHTTPClient = &http.Client{Timeout: 15 * time.Second}

// Client talks to the LINE Messaging API. Push delivers to a fixed
// recipient, Reply consumes a one-time reply token from a webhook event.
// A Client is shared across goroutines and is never mutated after
// construction.
type Client struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

func (c *Client) Push(ctx context.Context, to string, messages []Message) error {
	return c.post(ctx, "/v2/bot/message/push", pushRequest{To: to, Messages: messages})
}

func (c *Client) Reply(ctx context.Context, replyToken string, messages []Message) error {
	return c.post(ctx, "/v2/bot/message/reply", replyRequest{ReplyToken: replyToken, Messages: messages})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	httpClient := c.Client
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+path, bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("line api error: %s: %s", resp.Status, string(body))
	}
	return nil
}
