package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalPrint(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminal(&buf)
	if err := d.Begin(0x3c); err != nil {
		t.Fatal(err)
	}
	if d.Address() != 0x3c {
		t.Fatalf("Address = %#x", d.Address())
	}

	for _, size := range []int{0, 1, 2, 3, 9} {
		buf.Reset()
		d.Print("LOW PASS", size)
		if !strings.Contains(buf.String(), "LOW PASS") {
			t.Fatalf("size %d: output %q missing text", size, buf.String())
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Fatalf("size %d: output %q not newline terminated", size, buf.String())
		}
	}
}

func TestTerminalClear(t *testing.T) {
	var buf bytes.Buffer
	d := NewTerminal(&buf)
	d.Clear()
	if buf.String() != clearScreen {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}

func TestTerminalBeginRejectsNegative(t *testing.T) {
	if err := NewTerminal(&bytes.Buffer{}).Begin(-1); err == nil {
		t.Fatal("expected error for negative address")
	}
}

func TestNop(t *testing.T) {
	var d Display = Nop{}
	if err := d.Begin(1); err != nil {
		t.Fatal(err)
	}
	d.Print("x", 2)
	d.Clear()
}
