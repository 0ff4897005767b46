package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/ports"
)

const DefaultSweepInterval = time.Minute

// Registry hands out one Provider per bearer token.
type Registry struct {
	source ports.IdentitySource
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	providers map[string]*Provider
}

func NewRegistry(source ports.IdentitySource, ttl time.Duration, logger *zap.Logger) *Registry {
	return &Registry{
		source:    source,
		ttl:       ttl,
		logger:    logger,
		now:       time.Now,
		providers: make(map[string]*Provider),
	}
}

func (r *Registry) Provider(token string) *Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.providers[token]
	if !ok {
		p = NewProvider(r.source, token, r.ttl)
		p.now = r.now
		r.providers[token] = p
	}
	return p
}

func (r *Registry) Identity(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	identity, err := r.Provider(token).Identity(ctx)
	if IsUnauthenticated(err) {
		r.forget(token)
	}
	return identity, err
}

func (r *Registry) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.providers {
		p.Invalidate()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.providers)
}

// Run invalidates every identity when triggers fires and drops providers left
// idle for longer than the TTL on every sweep tick.
func (r *Registry) Run(ctx context.Context, triggers <-chan struct{}, sweep time.Duration) {
	if sweep <= 0 {
		sweep = DefaultSweepInterval
	}
	ticker := time.NewTicker(sweep)
	defer ticker.Stop()

	r.logger.Info("session registry started", zap.Duration("sweep_interval", sweep))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("session registry stopped")
			return
		case _, ok := <-triggers:
			if !ok {
				triggers = nil
				continue
			}
			r.InvalidateAll()
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Registry) sweep() {
	now := r.now()
	idle := r.ttl
	if idle <= 0 {
		idle = time.Hour
	}

	r.mu.Lock()
	snapshot := make(map[string]*Provider, len(r.providers))
	for token, p := range r.providers {
		snapshot[token] = p
	}
	r.mu.Unlock()

	var expired []string
	for token, p := range snapshot {
		if p.idleSince(now) > idle {
			expired = append(expired, token)
		}
	}
	if len(expired) == 0 {
		return
	}

	r.mu.Lock()
	removed := 0
	for _, token := range expired {
		if r.providers[token] == snapshot[token] {
			delete(r.providers, token)
			removed++
		}
	}
	r.mu.Unlock()

	if removed > 0 {
		r.logger.Debug("dropped idle sessions", zap.Int("count", removed))
	}
}

func (r *Registry) forget(token string) {
	r.mu.Lock()
	delete(r.providers, token)
	r.mu.Unlock()
}
