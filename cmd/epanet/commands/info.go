package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agiangrant/epanet"
)

// Info implements the 'epanet info' command
func Info(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	lib := fs.String("lib", "", "Path to the EPANET shared library")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: epanet info [options] <file.inp>")
	}

	_, _, done, err := setup(*lib)
	if err != nil {
		return err
	}
	defer done()

	// The report file only receives input errors.
	tmp, err := os.MkdirTemp("", "epanet-info-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	p, err := epanet.OpenProject(fs.Arg(0), filepath.Join(tmp, "info.rpt"), "")
	if err != nil && !epanet.IsWarning(err) {
		return err
	}
	defer p.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	return printInfo(os.Stdout, fs.Arg(0), p)
}

func printInfo(w io.Writer, name string, p *epanet.Project) error {
	title, err := p.Title()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", name)
	for _, line := range title {
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	fmt.Fprintln(w, "\nElements:")
	for _, c := range []epanet.CountType{
		epanet.NodeCount, epanet.TankCount, epanet.LinkCount,
		epanet.PatternCount, epanet.CurveCount, epanet.ControlCount, epanet.RuleCount,
	} {
		n, err := p.Count(c)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-10s %d\n", c.String(), n)
	}

	units, err := p.FlowUnits()
	if err != nil {
		return err
	}
	headloss, err := p.Option(epanet.OptHeadLossForm)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nOptions:")
	fmt.Fprintf(w, "  %-10s %s\n", "flow", units)
	fmt.Fprintf(w, "  %-10s %s\n", "headloss", epanet.HeadLossType(headloss))

	fmt.Fprintln(w, "\nTimes:")
	for _, t := range []struct {
		name  string
		param epanet.TimeParameter
	}{
		{"duration", epanet.TimeDuration},
		{"hydraulic", epanet.TimeHydStep},
		{"quality", epanet.TimeQualStep},
		{"pattern", epanet.TimePatternStep},
		{"report", epanet.TimeReportStep},
	} {
		v, err := p.TimeParam(t.param)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-10s %s\n", t.name, time.Duration(v)*time.Second)
	}

	q, err := p.QualityInfo()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nQuality:")
	fmt.Fprintf(w, "  %-10s %s\n", "type", q.Type)
	if q.Type == epanet.QualityChem {
		fmt.Fprintf(w, "  %-10s %s (%s)\n", "chemical", q.ChemName, q.ChemUnits)
	}
	return nil
}
