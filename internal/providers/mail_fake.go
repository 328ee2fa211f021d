package providers

import (
	"context"
	"sync"

	"github.com/felipemarinho/ewallet/internal/logger"
)

// FakeMailProvider records emails instead of delivering them. Selected with
// MAIL_PROVIDER=fake; used in development and in tests.
type FakeMailProvider struct {
	mu   sync.Mutex
	sent []EmailData
}

func NewFakeMailProvider() *FakeMailProvider {
	return &FakeMailProvider{}
}

func (p *FakeMailProvider) SendEmail(ctx context.Context, data EmailData) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sent = append(p.sent, data)

	logger.Log.Infow("fake email send", "to", data.To.Email, "subject", data.Subject)

	return nil
}

// Sent returns a copy of every recorded email.
func (p *FakeMailProvider) Sent() []EmailData {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]EmailData, len(p.sent))
	copy(out, p.sent)
	return out
}
