package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caiorcferreira/jsembed/internal/jsliteral"
	"github.com/caiorcferreira/jsembed/internal/pipeline"
)

var ErrExtraPayload = errors.New("declaration codec: more than one payload received")

// DeclarationCodec writes a single const declaration binding Name to the
// data of the one message it receives. The data must already be a quoted
// literal, see jsliteral.Quote.
type DeclarationCodec struct {
	Name string
}

var _ WriteCodec = (*DeclarationCodec)(nil)

func NewDeclarationCodec(name string) *DeclarationCodec {
	return &DeclarationCodec{Name: name}
}

// Encode writes nothing when the pipe closes without a message.
func (c *DeclarationCodec) Encode(ctx context.Context, pipe pipeline.Pipe, writer io.Writer) error {
	defer pipe.Close()

	if !jsliteral.IsIdentifier(c.Name) {
		return fmt.Errorf("declaration codec: invalid identifier %q", c.Name)
	}

	written := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, open := <-pipe.In():
			if !open {
				return nil
			}

			if written {
				return ErrExtraPayload
			}

			literal, ok := msg.Data.(string)
			if !ok {
				return fmt.Errorf("declaration codec: message %s carries %T, want string", msg.ID, msg.Data)
			}

			slog.Debug("writing declaration", "id", msg.ID, "name", c.Name)

			if _, err := io.WriteString(writer, jsliteral.Declaration(c.Name, literal)); err != nil {
				return err
			}

			written = true
		}
	}
}
