package cart

import "context"

// Gateway applies a literal command to the backing cart table. Results are
// not consumed; any failure is returned unchanged.
type Gateway interface {
	Execute(ctx context.Context, command string, args ...any) error
}
