package terminal

import (
	"os"

	"golang.org/x/term"
)

// Details describes the standard descriptors at startup.
type Details struct {
	Detected *Detected     `json:"detected,omitempty"`
	Probes   []ProbeResult `json:"probes"`
}

type Detected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Probe inspects stdin, stdout and stderr for terminal support and size.
func Probe() Details {
	probes := []struct {
		name string
		f    *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	results := make([]ProbeResult, 0, len(probes))
	var detected *Detected
	for _, probe := range probes {
		entry := ProbeResult{Name: probe.name}
		fd := int(probe.f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &Detected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return Details{Detected: detected, Probes: results}
}
