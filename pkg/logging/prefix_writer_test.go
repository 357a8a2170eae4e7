package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriterCompleteLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter(">> ", &out)

	if _, err := pw.Write([]byte("one\ntwo\n")); err != nil {
		t.Fatal(err)
	}

	want := ">> one\n>> two\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPrefixWriterBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("* ", &out)

	if _, err := pw.Write([]byte("partial")); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("partial line flushed early: %q", out.String())
	}

	if _, err := pw.Write([]byte(" line\n")); err != nil {
		t.Fatal(err)
	}
	if want := "* partial line\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
