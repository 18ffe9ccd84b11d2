package filesystem

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/caiorcferreira/jsembed/internal/pipeline"
	"github.com/google/uuid"
)

// TextCodec carries a whole file as one string message.
type TextCodec struct{}

var _ ReadCodec = (*TextCodec)(nil)
var _ WriteCodec = (*TextCodec)(nil)

func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Parse sends nothing until the reader is drained, so a failed read never
// reaches the routines downstream.
func (c *TextCodec) Parse(ctx context.Context, reader io.Reader, pipe pipeline.Pipe) error {
	defer pipe.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	msg := pipeline.Msg{ID: uuid.NewString(), Data: string(data)}

	slog.Debug("read text payload", "id", msg.ID, "bytes", len(data))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case pipe.Out() <- msg:
		return nil
	}
}

// Encode writes the string data of every message in arrival order.
func (c *TextCodec) Encode(ctx context.Context, pipe pipeline.Pipe, writer io.Writer) error {
	defer pipe.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, open := <-pipe.In():
			if !open {
				return nil
			}

			text, ok := msg.Data.(string)
			if !ok {
				return fmt.Errorf("text codec: message %s carries %T, want string", msg.ID, msg.Data)
			}

			if _, err := io.WriteString(writer, text); err != nil {
				return err
			}
		}
	}
}
