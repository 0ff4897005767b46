// Package session keeps the authenticated identity behind each credential.
// Identities are refetched from the auth backend when a refresh trigger fires,
// when they age past the configured TTL, or when the backend says they expired.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/ports"
	"github.com/srgjo27/tutor_booking/internal/platform/metrics"
)

type Provider struct {
	source ports.IdentitySource
	token  string
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	identity  *domain.Identity
	fetchedAt time.Time
	lastUsed  time.Time
	stale     bool
	gen       uint64

	fetches singleflight.Group
}

func NewProvider(source ports.IdentitySource, token string, ttl time.Duration) *Provider {
	return &Provider{
		source: source,
		token:  token,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Identity returns the cached identity, refetching it first if it is stale.
// The fetch runs without holding the provider lock and concurrent callers
// share a single backend call.
func (p *Provider) Identity(ctx context.Context) (domain.Identity, error) {
	p.mu.Lock()
	now := p.now()
	p.lastUsed = now
	if p.fresh(now) {
		identity := *p.identity
		p.mu.Unlock()
		return identity, nil
	}
	gen := p.gen
	p.mu.Unlock()

	v, err, _ := p.fetches.Do(p.token, func() (any, error) {
		return p.source.CurrentIdentity(ctx, p.token)
	})

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.identity = nil
		metrics.SessionRefreshes.WithLabelValues("error").Inc()
		return domain.Identity{}, fmt.Errorf("refresh session: %w", err)
	}

	identity, _ := v.(*domain.Identity)
	if identity == nil || identity.Expired(now) {
		p.identity = nil
		metrics.SessionRefreshes.WithLabelValues("anonymous").Inc()
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	p.identity = identity
	p.fetchedAt = now
	if p.gen == gen {
		p.stale = false
	}
	metrics.SessionRefreshes.WithLabelValues("ok").Inc()

	return *identity, nil
}

// Invalidate forces the next Identity call to refetch.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.stale = true
	p.gen++
	p.mu.Unlock()
}

// Watch invalidates the provider every time triggers fires until ctx ends.
func (p *Provider) Watch(ctx context.Context, triggers <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-triggers:
			if !ok {
				return
			}
			p.Invalidate()
		}
	}
}

func (p *Provider) idleSince(now time.Time) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return now.Sub(p.lastUsed)
}

func (p *Provider) fresh(now time.Time) bool {
	if p.identity == nil || p.stale {
		return false
	}
	if p.ttl > 0 && now.Sub(p.fetchedAt) >= p.ttl {
		return false
	}
	return !p.identity.Expired(now)
}

// IsUnauthenticated reports whether err means the credential has no session.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, domain.ErrUnauthenticated)
}
