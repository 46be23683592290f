package errors

import (
	"errors"
	"fmt"
	"testing"
)

// recordingHandler captures reported errors for inspection.
type recordingHandler struct {
	errs []*CellError
}

func (h *recordingHandler) HandleError(err *CellError) {
	h.errs = append(h.errs, err)
}

func TestCellError_Error(t *testing.T) {
	err := &CellError{
		Op:   "cell.New",
		Kind: KindDuplicateKey,
		Key:  "todos",
		Err:  errors.New("key already registered"),
	}

	got := err.Error()
	want := `cell.New [duplicate-key] key="todos": key already registered`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCellError_ErrorWithoutKey(t *testing.T) {
	err := &CellError{
		Op:   "cell.New",
		Kind: KindBadConfig,
		Err:  errors.New("empty key"),
	}

	got := err.Error()
	want := "cell.New [bad-config]: empty key"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCellError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := &CellError{Op: "cell.New", Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should match the wrapped error")
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindDuplicateKey, "duplicate-key"},
		{KindBadConfig, "bad-config"},
		{ErrorKind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestReport(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&CellError{Op: "cell.New", Kind: KindDuplicateKey, Key: "dup"})

	if len(h.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero Timestamp")
	}
}

func TestReport_NilIsNoop(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(nil)

	if len(h.errs) != 0 {
		t.Errorf("expected no reported errors, got %d", len(h.errs))
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

func ExampleCellError() {
	err := &CellError{
		Op:   "cell.New",
		Kind: KindDuplicateKey,
		Key:  "session/filters",
		Err:  fmt.Errorf("key already registered"),
	}
	fmt.Println(err)
	// Output:
	// cell.New [duplicate-key] key="session/filters": key already registered
}
