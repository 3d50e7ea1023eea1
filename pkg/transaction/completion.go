package transaction

import (
	"sync"

	"github.com/aretw0/lattice/pkg/domain"
)

// Completion is a one-shot completion token.
type Completion struct {
	mu   sync.Mutex
	done chan struct{}
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Fulfill closes the token. Every call after the first returns domain.ErrAlreadyFulfilled.
func (c *Completion) Fulfill() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return domain.ErrAlreadyFulfilled
	default:
		close(c.done)
		return nil
	}
}

// Done is closed once the token is fulfilled.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Fulfilled reports whether Fulfill has been called.
func (c *Completion) Fulfilled() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
