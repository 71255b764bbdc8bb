package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultProTalkURL is the public Pro-Talk API host.
const DefaultProTalkURL = "https://api.pro-talk.ru"

// ProTalkClient talks to the Pro-Talk bot completion endpoint.
// The bot token is part of the request path, so URLs are never logged.
type ProTalkClient struct {
	baseURL    string
	botToken   string
	botID      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewProTalkClient builds a client; a nil httpClient means a client with
// no timeout, leaving cancellation to the caller's context.
func NewProTalkClient(baseURL, botToken, botID string, httpClient *http.Client, logger *zap.Logger) *ProTalkClient {
	if baseURL == "" {
		baseURL = DefaultProTalkURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ProTalkClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		botToken:   botToken,
		botID:      botID,
		httpClient: httpClient,
		logger:     logger,
	}
}

type proTalkRequest struct {
	BotID   int    `json:"bot_id"`
	ChatID  string `json:"chat_id"`
	Message string `json:"message"`
}

type proTalkResponse struct {
	Done string `json:"done"`
}

// Complete sends prompt under chatID. It never retries.
func (c *ProTalkClient) Complete(ctx context.Context, chatID, prompt string) (string, error) {
	if c.botToken == "" || c.botID == "" {
		return "", ErrNotConfigured
	}
	botID, err := strconv.Atoi(strings.TrimSpace(c.botID))
	if err != nil {
		return "", fmt.Errorf("%w: bot id %q is not an integer", ErrNotConfigured, c.botID)
	}

	reqJSON, err := json.Marshal(proTalkRequest{BotID: botID, ChatID: chatID, Message: prompt})
	if err != nil {
		return "", &TransportError{Err: err}
	}

	endpoint := c.baseURL + "/api/v1.0/ask/" + c.botToken
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqJSON))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("build request for %s: invalid url", c.baseURL)}
	}
	req.Header.Set("Content-Type", "application/json")

	reqSentTime := time.Now()
	resp, err := c.httpClient.Do(req)
	reqDuration := time.Since(reqSentTime)
	if err != nil {
		// *url.Error embeds the URL, and with it the token.
		cause := err
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			cause = urlErr.Err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			cause = ctxErr
		}
		c.logger.Warn("pro-talk request failed", zap.Duration("elapsed", reqDuration), zap.String("cause", cause.Error()))
		return "", &TransportError{Err: cause}
	}
	defer resp.Body.Close()

	c.logger.Debug("pro-talk response received", zap.Duration("elapsed", reqDuration), zap.Int("status", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{StatusCode: resp.StatusCode}
	}

	var parsed proTalkResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.Done == "" {
		return "", ErrEmptyResponse
	}
	return parsed.Done, nil
}
