package core

import (
	"testing"
)

// chunkRecorder records every Write call separately so tests can assert
// line-granularity output.
type chunkRecorder struct {
	chunks []string
}

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.chunks = append(r.chunks, string(p))
	return len(p), nil
}

func TestConsolePrefixes(t *testing.T) {
	rec := &chunkRecorder{}
	con := NewConsole(rec)

	con.Conf("ok")
	con.Errr("bad")
	con.Warn("odd")
	con.Recv("OK")
	con.Data("a 1")
	con.Plain("banner")

	expected := []string{
		"Conf: ok\r\n",
		"Errr: bad\r\n",
		"Warn: odd\r\n",
		"Recv: OK\r\n",
		"Data: a 1;\r\n",
		"banner\r\n",
	}
	if len(rec.chunks) != len(expected) {
		t.Fatalf("got %d writes, expected %d", len(rec.chunks), len(expected))
	}
	for i, want := range expected {
		if rec.chunks[i] != want {
			t.Errorf("write %d = %q, expected %q", i, rec.chunks[i], want)
		}
	}
}

func TestConsoleSingleWritePerLine(t *testing.T) {
	rec := &chunkRecorder{}
	con := NewConsole(rec)

	// One logical line, one Write call: responses never interleave
	// mid-line with telemetry.
	con.Conf("added LED L1 at index 0")
	if len(rec.chunks) != 1 {
		t.Errorf("one line produced %d writes", len(rec.chunks))
	}
}
