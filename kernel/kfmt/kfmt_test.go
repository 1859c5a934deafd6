package kfmt

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintfWithoutSinkBuffersOutput(t *testing.T) {
	defer SetOutputSink(nil)
	outputSink = nil

	Printf("loaded %d segments at 0x%x\n", 2, 0x1000)

	var buf bytes.Buffer
	SetOutputSink(&buf)

	exp := "loaded 2 segments at 0x1000\n"
	if got := buf.String(); !strings.Contains(got, exp) {
		t.Fatalf("expected early buffer to be drained into the sink; got %q", got)
	}
}

func TestPrintfWithSink(t *testing.T) {
	defer SetOutputSink(nil)

	var buf bytes.Buffer
	SetOutputSink(&buf)
	buf.Reset()

	Printf("entry=0x%x\n", 0x101120)

	if exp, got := "entry=0x101120\n", buf.String(); got != exp {
		t.Fatalf("expected sink to contain %q; got %q", exp, got)
	}
}

func TestGetOutputSinkDefaultsToEarlyBuffer(t *testing.T) {
	defer SetOutputSink(nil)
	outputSink = nil

	if got := GetOutputSink(); got != &earlyPrintBuffer {
		t.Fatal("expected GetOutputSink to return the early print buffer when no sink is set")
	}
}
