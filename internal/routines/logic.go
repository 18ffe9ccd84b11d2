package routines

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/caiorcferreira/jsembed/internal/pipeline"
)

// TransformRoutine applies a function to the data of every message it
// receives. Message IDs are preserved.
type TransformRoutine[T, V any] struct {
	transform func(T) V
}

func Transform[T, V any](f func(T) V) *TransformRoutine[T, V] {
	return &TransformRoutine[T, V]{transform: f}
}

// Start fails on the first message whose data is not a T.
func (t *TransformRoutine[T, V]) Start(ctx context.Context, pipe pipeline.Pipe) error {
	defer pipe.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, open := <-pipe.In():
			if !open {
				return nil
			}

			val, ok := msg.Data.(T)
			if !ok {
				var zero T
				return fmt.Errorf("transform: message %s carries %T, want %T", msg.ID, msg.Data, zero)
			}

			slog.Debug("transforming message", "id", msg.ID)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case pipe.Out() <- pipeline.Msg{ID: msg.ID, Data: t.transform(val)}:
			}
		}
	}
}
