package ports

import "context"

// Dispatcher runs actions against a model.
// Dispatch blocks until the action's transaction is fulfilled or ctx is done.
type Dispatcher[M any] interface {
	Dispatch(ctx context.Context, action Action[M]) error
}
