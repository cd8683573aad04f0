package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeUpstream, http.StatusInternalServerError},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorCodeUpstream.String(); got != "upstream" {
		t.Fatalf("String = %q", got)
	}
	if got := ErrorCode(4242).String(); got != "code(4242)" {
		t.Fatalf("String(unknown) = %q", got)
	}
}

func TestErrorRenderAndUnwrap(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render = %q", nilErr.Error())
	}

	e := Newf(ErrorCodeJSON, "bad json %d", 12)
	if e.Error() != "bad json 12" {
		t.Fatalf("Newf render = %q", e.Error())
	}

	root := stderrs.New("dial tcp: refused")
	w := Wrap(root, ErrorCodeUpstream, "tone analyzer")
	if w.Error() != "tone analyzer: dial tcp: refused" {
		t.Fatalf("Wrap render = %q", w.Error())
	}
	if !stderrs.Is(w, root) {
		t.Fatalf("Wrap must keep cause")
	}
	if Root(fmt.Errorf("outer: %w", w)) != root {
		t.Fatalf("Root did not reach cause")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) must be nil")
	}
}

func TestCodeOfAndHTTP(t *testing.T) {
	wrapped := fmt.Errorf("ctx: %w", Upstreamf("deepl %d", 503))
	if CodeOf(wrapped) != ErrorCodeUpstream {
		t.Fatalf("CodeOf = %v", CodeOf(wrapped))
	}
	if !IsCode(wrapped, ErrorCodeUpstream) {
		t.Fatalf("IsCode false")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors must be unknown")
	}

	status, wire := HTTP(DuplicateKeyf("name %q taken", "ana"))
	if status != http.StatusConflict || wire.Code != ErrorCodeDuplicateKey {
		t.Fatalf("HTTP = %d %+v", status, wire)
	}
	status, wire = HTTP(nil)
	if status != http.StatusOK || wire != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", status, wire)
	}
	if w := WireFrom(stderrs.New("boom")); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}
}

func TestWithFieldAndOpCopyOnWrite(t *testing.T) {
	base := Validationf("name is required")
	withField := WithField(base, "name")
	withOp := WithOp(withField, "auth.signup")

	e, _ := As(withOp)
	if e.Field() != "name" || e.Op() != "auth.signup" {
		t.Fatalf("field/op = %q/%q", e.Field(), e.Op())
	}
	orig, _ := As(base)
	if orig.Field() != "" || orig.Op() != "" {
		t.Fatalf("original mutated: %q/%q", orig.Field(), orig.Op())
	}

	plain := stderrs.New("x")
	if WithField(plain, "f") != plain || WithOp(plain, "o") != plain {
		t.Fatalf("foreign errors must pass through")
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatalf("WrapIf(nil) must be nil")
	}
	if !IsCode(WrapIf(stderrs.New("y"), ErrorCodeDB, "x"), ErrorCodeDB) {
		t.Fatalf("WrapIf lost code")
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("x"), ErrorCodeNotFound},
		{InvalidArgf("x"), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{DuplicateKeyf("x"), ErrorCodeDuplicateKey},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{Unauthorizedf("x"), ErrorCodeUnauthorized},
		{Unavailablef("x"), ErrorCodeUnavailable},
		{Upstreamf("x"), ErrorCodeUpstream},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("%q: code = %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
}
