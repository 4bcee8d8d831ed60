package diagnostics

import (
	"fmt"
	"io"
)

type Collector struct {
	Diags []*Diag

	out io.Writer
}

// NewCollector returns a collector that only saves diagnostics
func NewCollector() *Collector {
	return &Collector{
		Diags: nil,
		out:   nil,
	}
}

// NewCollectorWithOutput returns a collector that also prints every diagnostic as a
// single line to out
func NewCollectorWithOutput(out io.Writer) *Collector {
	return &Collector{
		Diags: nil,
		out:   out,
	}
}

func (collector *Collector) ReportAndSave(diag *Diag) {
	if collector.out != nil {
		fmt.Fprintln(collector.out, diag.Error())
	}
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

// First returns the first saved diagnostic of the given kind, if any
func (collector *Collector) First(kind DiagKind) (*Diag, bool) {
	for _, diag := range collector.Diags {
		if diag.Kind == kind {
			return diag, true
		}
	}
	return nil, false
}

func (collector *Collector) Reset() {
	collector.Diags = nil
}
