package cli

import "context"

type contextKey struct{}

// WithCLI returns a context carrying c.
// Commands run under this context use c instead of opening the database.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the CLI stored by WithCLI
func FromContext(ctx context.Context) (*CLI, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	return c, ok && c != nil
}
