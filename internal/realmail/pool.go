// Package realmail serves deliverable mailbox addresses for flows that need
// an inbox a human can actually check, as opposed to the synthesized ones.
package realmail

import (
	"context"
	"math/rand"
	"sync"

	"identikit/pkg/platform/sentinel"
)

// Default pool contents when no addresses were configured.
var seedEmails = []string{
	"test.user.01@gmail.com",
	"dev.tester.alpha@outlook.com",
	"qa.engineer.pro@yahoo.com",
	"identity.verify.01@protonmail.com",
	"sandbox.user.99@icloud.com",
}

// Pool is an in-memory set of verified addresses.
type Pool struct {
	mu     sync.RWMutex
	emails []string
	index  map[string]struct{}
}

// NewPool returns a pool holding the given addresses, or the built-in seed
// set when none are given.
func NewPool(emails ...string) *Pool {
	if len(emails) == 0 {
		emails = seedEmails
	}
	p := &Pool{
		index: make(map[string]struct{}, len(emails)),
	}
	for _, e := range emails {
		if _, ok := p.index[e]; ok {
			continue
		}
		p.index[e] = struct{}{}
		p.emails = append(p.emails, e)
	}
	return p
}

// Random returns one address drawn uniformly from the pool.
func (p *Pool) Random(_ context.Context) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.emails) == 0 {
		return "", sentinel.ErrNotFound
	}
	return p.emails[rand.Intn(len(p.emails))], nil
}

// Add registers a new address. Duplicates are rejected.
func (p *Pool) Add(_ context.Context, email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.index[email]; ok {
		return sentinel.ErrConflict
	}
	p.index[email] = struct{}{}
	p.emails = append(p.emails, email)
	return nil
}
