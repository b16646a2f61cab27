package util

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// HandleSignalInterrupt returns a copy of ctx that is cancelled on the
// first interrupt or SIGTERM.
func HandleSignalInterrupt(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
