package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"akplaw/models"
	"akplaw/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ProviderMailer forwards messages to a Resend-compatible transactional
// email HTTP API and queues background sends through asynq.
type ProviderMailer struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
	queue  *asynq.Client
}

// NewProviderMailer creates a Mailer for the given provider endpoint.
// queue may be nil; Enqueue then degrades to a synchronous best-effort send.
func NewProviderMailer(apiURL, apiKey, from string, queue *asynq.Client) *ProviderMailer {
	return &ProviderMailer{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
		queue:  queue,
	}
}

type providerPayload struct {
	From        string                   `json:"from"`
	To          []string                 `json:"to"`
	Subject     string                   `json:"subject"`
	HTML        string                   `json:"html"`
	ReplyTo     string                   `json:"reply_to,omitempty"`
	Attachments []models.EmailAttachment `json:"attachments,omitempty"`
}

type providerResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Send forwards the message to the provider and returns its message ID.
func (m *ProviderMailer) Send(ctx context.Context, msg models.EmailMessage) (string, error) {
	if len(msg.To) == 0 {
		return "", fmt.Errorf("mailer: message has no recipients")
	}

	payload := providerPayload{
		From:        m.from,
		To:          msg.To,
		Subject:     msg.Subject,
		HTML:        msg.HTML,
		ReplyTo:     msg.ReplyTo,
		Attachments: msg.Attachments,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("mailer: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mailer: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mailer: provider request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("mailer: provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	var pr providerResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return "", fmt.Errorf("mailer: failed to decode provider response: %w", err)
	}
	return pr.ID, nil
}

// Enqueue schedules the message for background delivery. Errors are logged
// only; the caller's flow continues regardless.
func (m *ProviderMailer) Enqueue(msg models.EmailMessage) {
	logger := utils.GetLogger()

	if m.queue == nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if _, err := m.Send(ctx, msg); err != nil {
				logger.Warn("mailer: direct send failed", zap.String("subject", msg.Subject), zap.Error(err))
			}
		}()
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Warn("mailer: failed to marshal queued message", zap.Error(err))
		return
	}
	task := asynq.NewTask(TypeMailSend, payload)
	if _, err := m.queue.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		logger.Warn("mailer: failed to enqueue message", zap.String("subject", msg.Subject), zap.Error(err))
	}
}
