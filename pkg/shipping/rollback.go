package shipping

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// EntityKind identifies the kind of a created entity for rollback purposes.
type EntityKind string

const (
	KindItem        EntityKind = "line item"
	KindLink        EntityKind = "package spec item"
	KindPackageSpec EntityKind = "package specification"
	KindOrder       EntityKind = "shipping order"
)

// unwindOrder is the deletion order on rollback: dependent records first,
// the order itself last.
var unwindOrder = []EntityKind{KindItem, KindLink, KindPackageSpec, KindOrder}

type undoFunc func(ctx context.Context) error

type undo struct {
	kind EntityKind
	name string
	fn   undoFunc
}

// compensation is the stack of undo actions accumulated during the forward
// pass. Every successful creation pushes exactly one undo; unwind executes
// them grouped by entity kind in unwindOrder, newest first within a kind.
//
// push is safe for concurrent use because creations within a step run
// concurrently.
type compensation struct {
	mu    sync.Mutex
	undos []undo
}

func (c *compensation) push(kind EntityKind, name string, fn undoFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.undos = append(c.undos, undo{kind: kind, name: name, fn: fn})
}

func (c *compensation) empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.undos) == 0
}

// unwind attempts every undo action, never stopping at a failure, and
// returns the deletions that failed. A nil result means full cleanup.
func (c *compensation) unwind(ctx context.Context, log *zap.Logger) []*RollbackError {
	c.mu.Lock()
	undos := c.undos
	c.undos = nil
	c.mu.Unlock()

	var failed []*RollbackError

	for _, kind := range unwindOrder {
		for i := len(undos) - 1; i >= 0; i-- {
			u := undos[i]
			if u.kind != kind {
				continue
			}

			err := u.fn(ctx)
			if err != nil {
				log.Error("rollback deletion failed",
					zap.String("kind", string(u.kind)),
					zap.String("name", u.name),
					zap.Error(err))
				failed = append(failed, &RollbackError{Kind: u.kind, Name: u.name, Err: err})

				continue
			}

			log.Debug("rolled back",
				zap.String("kind", string(u.kind)),
				zap.String("name", u.name))
		}
	}

	return failed
}
