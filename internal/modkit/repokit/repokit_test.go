package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"moodroom/internal/platform/store"
	kit "moodroom/internal/platform/testkit"
)

type fakeQ struct{ name string }

func (f *fakeQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row             { return nil }

type fakeTx struct {
	fakeQ
	tx    *fakeQ
	calls int
	err   error
}

func (f *fakeTx) Tx(_ context.Context, fn func(Queryer) error) error {
	f.calls++
	if err := fn(f.tx); err != nil {
		return err
	}
	return f.err
}

func TestBindFuncAndRequireQueryer(t *testing.T) {
	b := BindFunc[string](func(q Queryer) string { return RequireQueryer(q).(*fakeQ).name })
	if got := b.Bind(&fakeQ{name: "pool"}); got != "pool" {
		t.Fatalf("Bind = %q", got)
	}
	kit.MustPanic(t, func() { _ = b.Bind(nil) })
}

func TestInTxBindsTxQueryer(t *testing.T) {
	tx := &fakeTx{tx: &fakeQ{name: "tx"}}
	b := BindFunc[string](func(q Queryer) string { return q.(*fakeQ).name })

	got, err := InTx(context.Background(), tx, b, func(r string) (int, error) { return len(r), nil })
	if err != nil || got != 2 || tx.calls != 1 {
		t.Fatalf("InTx = %d, %v (calls %d)", got, err, tx.calls)
	}

	boom := errors.New("boom")
	if _, err := InTx(context.Background(), tx, b, func(string) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("fn error lost: %v", err)
	}
	tx.err = errors.New("commit")
	if _, err := InTx(context.Background(), tx, b, func(string) (int, error) { return 0, nil }); err == nil {
		t.Fatalf("commit error lost")
	}
}

type fakeGuard struct{ err error }

func (f fakeGuard) Guard(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return f.err
}

func TestMustGuard(t *testing.T) {
	MustGuard(context.Background(), "pg", fakeGuard{})
	kit.MustPanic(t, func() { MustGuard(context.Background(), "pg", nil) })

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "pg guard failed: down") {
			t.Fatalf("panic = %v", r)
		}
	}()
	MustGuard(context.Background(), "pg", fakeGuard{err: errors.New("down")})
}
