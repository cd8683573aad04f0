package repokit

import (
	"context"
	"fmt"
	"time"
)

// Guarder checks that a backing store answers
type Guarder interface {
	Guard(context.Context) error
}

// GuardTimeout bounds MustGuard when ctx has no deadline
const GuardTimeout = 5 * time.Second

// MustGuard panics when st does not pass its guard; used once at boot, before routes mount
func MustGuard(ctx context.Context, name string, st Guarder) {
	if st == nil {
		panic(fmt.Sprintf("%s: nil store", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Sprintf("%s guard failed: %v", name, err))
	}
}
