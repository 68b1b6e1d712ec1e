package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/GoArmGo/AdBoard/internal/messaging/payloads"
)

// fakeHasher помечает пароль префиксом, чтобы тесты не зависели от bcrypt.
type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(plaintext string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plaintext, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []payloads.EntityEvent
	err    error
}

func (p *recordingPublisher) PublishEntityEvent(_ context.Context, e payloads.EntityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Entity + "." + e.Action
	}
	return out
}

var errBrokerDown = errors.New("broker down")

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64    { return &v }
