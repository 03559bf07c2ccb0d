package ioutil_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ghettovoice/siphdr/internal/ioutil"
)

var errWrite = errors.New("write failed")

type limitWriter struct {
	limit   int
	written int
}

func (lw *limitWriter) Write(p []byte) (int, error) {
	n := min(len(p), lw.limit-lw.written)
	lw.written += n
	if n < len(p) {
		return n, errWrite
	}
	return n, nil
}

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cw := ioutil.NewCountingWriter(&buf)
	cw.WriteString("Expires")
	cw.Fprint(": ", 3600)
	cw.Call(func(w io.Writer) (int, error) { return w.Write([]byte(";x")) })

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("cw.Result() error = %v, want nil", err)
	}
	if want := "Expires: 3600;x"; buf.String() != want {
		t.Errorf("buf.String() = %q, want %q", buf.String(), want)
	}
	if num != buf.Len() || cw.Count() != num {
		t.Errorf("cw.Result() num = %d, cw.Count() = %d, want %d", num, cw.Count(), buf.Len())
	}
}

func TestCountingWriter_StopsOnError(t *testing.T) {
	t.Parallel()

	lw := &limitWriter{limit: 4}
	cw := ioutil.GetCountingWriter(lw)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("abc")
	cw.WriteString("def")
	called := false
	cw.Call(func(io.Writer) (int, error) {
		called = true
		return 0, nil
	})

	num, err := cw.Result()
	if !errors.Is(err, errWrite) {
		t.Errorf("cw.Result() error = %v, want %v", err, errWrite)
	}
	if num != 4 {
		t.Errorf("cw.Result() num = %d, want 4", num)
	}
	if called {
		t.Errorf("Call() invoked fn after error")
	}
}
