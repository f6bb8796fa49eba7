package wavproc

import "testing"

func TestParseProgram(t *testing.T) {
	tests := []struct {
		in      string
		want    Program
		wantErr bool
	}{
		{"lowpass", LowPass, false},
		{"Low-Pass", LowPass, false},
		{"lp", LowPass, false},
		{"high_pass", HighPass, false},
		{"HP", HighPass, false},
		{"band-reject", BandReject, false},
		{"notch", BandReject, false},
		{"bandpass", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseProgram(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseProgram(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseProgram(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProgramStringRoundTrip(t *testing.T) {
	for _, p := range []Program{LowPass, HighPass, BandReject} {
		got, err := ParseProgram(p.String())
		if err != nil || got != p {
			t.Fatalf("ParseProgram(%q) = %v, %v", p.String(), got, err)
		}
	}
	if Program(7).String() != "Program(7)" {
		t.Fatalf("unknown program string = %q", Program(7).String())
	}
	if BandReject.Title() != "BAND REJECT" {
		t.Fatalf("title = %q", BandReject.Title())
	}
}

func TestStateString(t *testing.T) {
	if HeaderCopied.String() != "header-copied" || State(-1).String() != "State(-1)" {
		t.Fatalf("unexpected state names %q %q", HeaderCopied, State(-1))
	}
	if !ClosedFailure.Terminal() || Streaming.Terminal() {
		t.Fatal("Terminal mismatch")
	}
}
