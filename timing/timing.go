//
// Copyright (c) 2020-2025 Markku Rossi
//
// All rights reserved.
//

// Package timing records the phases of a protocol run and renders
// profiling reports with their durations and transfer sizes.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// FileSize specifies a data size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records the protocol phases of one peer. All methods accept
// a nil receiver so protocol drivers can be run without profiling.
type Timing struct {
	Role   string
	Start  time.Time
	Phases []*Phase
	stats  IOStats
}

// NewTiming creates a new Timing for the role. The stats are sampled
// at phase boundaries to compute the data transferred in each phase.
func NewTiming(role string, stats IOStats) *Timing {
	return &Timing{
		Role:  role,
		Start: time.Now(),
		stats: stats,
	}
}

// Phase starts a new protocol phase.
func (t *Timing) Phase(label string) *Phase {
	if t == nil {
		return nil
	}
	p := &Phase{
		Label:  label,
		Start:  time.Now(),
		timing: t,
		xfer:   t.stats.Sum(),
	}
	t.Phases = append(t.Phases, p)
	return p
}

// Phase records one protocol phase and its steps.
type Phase struct {
	Label string
	Start time.Time
	End   time.Time
	Xfer  uint64
	Steps []*Step

	timing *Timing
	xfer   uint64
}

// Step contains information about one step of a phase.
type Step struct {
	Label string
	Start time.Time
	End   time.Time
}

// Step ends the current step of the phase. The step starts where the
// previous step ended.
func (p *Phase) Step(label string) {
	if p == nil {
		return
	}
	start := p.Start
	if len(p.Steps) > 0 {
		start = p.Steps[len(p.Steps)-1].End
	}
	p.Steps = append(p.Steps, &Step{
		Label: label,
		Start: start,
		End:   time.Now(),
	})
}

// Done ends the phase.
func (p *Phase) Done() {
	if p == nil {
		return
	}
	p.End = time.Now()
	p.Xfer = p.timing.stats.Sum() - p.xfer
}

// Duration returns the phase duration. Unfinished phases have zero
// duration.
func (p *Phase) Duration() time.Duration {
	if p.End.IsZero() {
		return 0
	}
	return p.End.Sub(p.Start)
}

// Total returns the total duration of all phases.
func (t *Timing) Total() time.Duration {
	var total time.Duration
	for _, p := range t.Phases {
		total += p.Duration()
	}
	return total
}

// Print prints the profiling report to w.
func (t *Timing) Print(w io.Writer) {
	if t == nil || len(t.Phases) == 0 {
		return
	}
	total := t.Total()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header(t.Role).SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Xfer").SetAlign(tabulate.MR)

	for _, p := range t.Phases {
		d := p.Duration()

		row := tab.Row()
		row.Column(p.Label)
		row.Column(d.String())
		row.Column(percent(d, total))
		row.Column(FileSize(p.Xfer).String())

		for idx, step := range p.Steps {
			prefix := "\u251C\u2574"
			if idx+1 >= len(p.Steps) {
				prefix = "\u2570\u2574"
			}
			sd := step.End.Sub(step.Start)

			row := tab.Row()
			row.Column(prefix + step.Label).SetFormat(tabulate.FmtItalic)
			row.Column(sd.String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(sd, d)).SetFormat(tabulate.FmtItalic)
		}
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(t.stats.Sum()).String()).SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("\u251C\u2574Sent").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column("")
	row.Column(FileSize(load(t.stats.Sent)).String()).
		SetFormat(tabulate.FmtItalic)

	row = tab.Row()
	row.Column("\u251C\u2574Rcvd").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column("")
	row.Column(FileSize(load(t.stats.Recvd)).String()).
		SetFormat(tabulate.FmtItalic)

	row = tab.Row()
	row.Column("\u2570\u2574Flcd").SetFormat(tabulate.FmtItalic)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%v", load(t.stats.Flushed))).
		SetFormat(tabulate.FmtItalic)

	tab.Print(w)
}

func percent(d, total time.Duration) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}
