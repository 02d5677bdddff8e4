// Package notify delivers run reports to a chat channel. Delivery is
// fire-and-forget: failures are logged by callers and never retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Notifier accepts one formatted text blob per run.
type Notifier interface {
	Post(ctx context.Context, text string) error
}

const slackPostMessageURL = "https://slack.com/api/chat.postMessage"

// SlackNotifier posts to a Slack channel via chat.postMessage.
type SlackNotifier struct {
	httpClient *http.Client
	postURL    string
	token      string
	channelID  string
	prefix     string
}

// NewSlackNotifier creates a Slack notifier. testMode prefixes every
// message so test-channel traffic is unmistakable.
func NewSlackNotifier(token, channelID string, testMode bool) *SlackNotifier {
	prefix := ""
	if testMode {
		prefix = "🛠 [TEST] "
	}
	return &SlackNotifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		postURL:    slackPostMessageURL,
		token:      token,
		channelID:  channelID,
		prefix:     prefix,
	}
}

type slackMessage struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type slackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Post sends one message to the configured channel.
func (n *SlackNotifier) Post(ctx context.Context, text string) error {
	payload, err := json.Marshal(slackMessage{Channel: n.channelID, Text: n.prefix + text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.postURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack request failed: %w", err)
	}
	defer resp.Body.Close()

	var result slackResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode slack response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("slack rejected message: %s", result.Error)
	}
	return nil
}

// LogNotifier logs reports instead of sending them. Used in
// development when no bot token is configured.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Post(ctx context.Context, text string) error {
	n.logger.Infof("📨 MOCK NOTIFY:\n%s", text)
	return nil
}
