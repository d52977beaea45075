package app

import (
	"context"
	"io"
)

// Invoker runs the external mirroring tool, streaming its combined
// stdout and stderr to out. A nonzero exit surfaces as the returned
// error.
type Invoker interface {
	Run(ctx context.Context, tool string, args []string, out io.Writer) error
}
