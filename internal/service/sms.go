package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/logger"
	"rentops-backend/internal/repository"

	"github.com/google/uuid"
)

// SMSProvider is the gateway boundary. Implementations send one message and
// report failure; queuing and retry live above.
type SMSProvider interface {
	Send(ctx context.Context, phone, body string) error
}

// HTTPSMSProvider posts messages to a JSON SMS gateway.
type HTTPSMSProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPSMSProvider(endpoint, apiKey string) *HTTPSMSProvider {
	return &HTTPSMSProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPSMSProvider) Send(ctx context.Context, phone, body string) error {
	payload, err := json.Marshal(map[string]string{"phone": phone, "message": body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

type smsService struct {
	provider    SMSProvider
	outboxRepo  repository.SMSOutboxRepository
	maxAttempts int
	backoff     time.Duration
}

// NewSMSService wraps a provider with a bounded-retry policy and a durable
// outbox: maxAttempts sends with a fixed backoff between them, then the
// message is parked for the flush job.
func NewSMSService(provider SMSProvider, outboxRepo repository.SMSOutboxRepository, maxAttempts int, backoff time.Duration) SMSService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &smsService{
		provider:    provider,
		outboxRepo:  outboxRepo,
		maxAttempts: maxAttempts,
		backoff:     backoff,
	}
}

func (s *smsService) trySend(ctx context.Context, phone, body string) (int, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		lastErr = s.provider.Send(ctx, phone, body)
		if lastErr == nil {
			return attempt, nil
		}
		logger.Warn("SMS attempt failed", "phone", phone, "attempt", attempt, "error", lastErr)
		if attempt < s.maxAttempts {
			select {
			case <-time.After(s.backoff):
			case <-ctx.Done():
				return attempt, ctx.Err()
			}
		}
	}
	return s.maxAttempts, lastErr
}

func (s *smsService) Notify(ctx context.Context, phone, body string) error {
	attempts, err := s.trySend(ctx, phone, body)
	if err == nil {
		return nil
	}

	msg := &domain.SMSMessage{
		ID:        uuid.NewString(),
		Phone:     phone,
		Body:      body,
		Status:    domain.SMSStatusPending,
		Attempts:  attempts,
		LastError: err.Error(),
	}
	if qErr := s.outboxRepo.Enqueue(ctx, msg); qErr != nil {
		// Both the gateway and the outbox are down; the message is lost and
		// the caller decides how loud to be.
		return fmt.Errorf("sms send failed (%v) and enqueue failed: %w", err, qErr)
	}
	logger.Info("SMS parked in outbox", "phone", phone, "messageID", msg.ID)
	return nil
}

// outboxRetryCap is the total attempt budget per message before it is marked
// failed and left for manual follow-up.
const outboxRetryCap = 10

func (s *smsService) FlushOutbox(ctx context.Context) (int, int, error) {
	pending, err := s.outboxRepo.ListPending(ctx, 100)
	if err != nil {
		return 0, 0, err
	}

	sent, failed := 0, 0
	for i := range pending {
		msg := &pending[i]
		msg.Attempts++
		if sendErr := s.provider.Send(ctx, msg.Phone, msg.Body); sendErr != nil {
			msg.LastError = sendErr.Error()
			if msg.Attempts >= outboxRetryCap {
				msg.Status = domain.SMSStatusFailed
				failed++
			}
		} else {
			now := time.Now()
			msg.Status = domain.SMSStatusSent
			msg.SentOn = &now
			msg.LastError = ""
			sent++
		}
		if err := s.outboxRepo.Update(ctx, msg); err != nil {
			return sent, failed, err
		}
	}
	return sent, failed, nil
}
