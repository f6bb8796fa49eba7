package wavproc

import (
	"fmt"
	"strings"
)

// Program selects the filter applied by a run.
type Program int

const (
	LowPass Program = iota
	HighPass
	BandReject
)

var programNames = [...]string{
	LowPass:    "lowpass",
	HighPass:   "highpass",
	BandReject: "bandreject",
}

var programTitles = [...]string{
	LowPass:    "LOW PASS",
	HighPass:   "HIGH PASS",
	BandReject: "BAND REJECT",
}

func (p Program) String() string {
	if p < 0 || int(p) >= len(programNames) {
		return fmt.Sprintf("Program(%d)", int(p))
	}
	return programNames[p]
}

// Title is the label shown on the display while the program runs.
func (p Program) Title() string {
	if p < 0 || int(p) >= len(programTitles) {
		return p.String()
	}
	return programTitles[p]
}

// ParseProgram maps a program name to a Program. Dashes, underscores and
// case are ignored, and the short forms "lp", "hp" and "notch" are accepted.
func ParseProgram(s string) (Program, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	switch key {
	case "lowpass", "lp":
		return LowPass, nil
	case "highpass", "hp":
		return HighPass, nil
	case "bandreject", "bandstop", "notch", "br":
		return BandReject, nil
	}
	return 0, fmt.Errorf("wavproc: unknown program %q", s)
}
