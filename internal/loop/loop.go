package loop

import (
	"bufio"
	"context"
	"io"
)

// Run plays a single local game on the terminal behind r and w. It blocks
// until the player quits or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts SessionOptions) error {
	return NewSession(r, w, opts).Run(ctx)
}
