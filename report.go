package epanet

import "time"

// WriteLine appends a line of text to the report file.
func (p *Project) WriteLine(line string) error {
	if err := checkStrings(line); err != nil {
		return err
	}
	return p.call("write line", func(eng engine, ph uintptr) int32 {
		return eng.WriteLine(ph, line)
	})
}

// Report writes simulation results to the report file. Results must have been
// saved with SaveH or an InitQ(Save) quality run first.
func (p *Project) Report() error {
	return p.call("report", func(eng engine, ph uintptr) int32 {
		return eng.Report(ph)
	})
}

func (p *Project) CopyReport(filename string) error {
	if err := checkStrings(filename); err != nil {
		return err
	}
	return p.call("copy report", func(eng engine, ph uintptr) int32 {
		return eng.CopyReport(ph, filename)
	})
}

func (p *Project) ClearReport() error {
	return p.call("clear report", func(eng engine, ph uintptr) int32 {
		return eng.ClearReport(ph)
	})
}

// ResetReport restores the default reporting options.
func (p *Project) ResetReport() error {
	return p.call("reset report", func(eng engine, ph uintptr) int32 {
		return eng.ResetReport(ph)
	})
}

// SetReport applies one line of [REPORT] section syntax, e.g. "NODES ALL".
func (p *Project) SetReport(format string) error {
	if err := checkStrings(format); err != nil {
		return err
	}
	return p.call("set report", func(eng engine, ph uintptr) int32 {
		return eng.SetReport(ph, format)
	})
}

func (p *Project) SetStatusReport(level StatusReport) error {
	return p.call("set status report", func(eng engine, ph uintptr) int32 {
		return eng.SetStatusReport(ph, int32(level))
	})
}

// Statistic returns a convergence or mass balance statistic of the last
// analysis.
func (p *Project) Statistic(stat AnalysisStatistic) (float64, error) {
	return get(p, "get statistic", func(eng engine, ph uintptr) (float64, int32) {
		return eng.Statistic(ph, int32(stat))
	})
}

// ResultIndex returns the order in which a node or link was written to the
// binary output file.
func (p *Project) ResultIndex(object ObjectType, index int) (int, error) {
	v, err := get(p, "get result index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.ResultIndex(ph, int32(object), int32(index))
	})
	return int(v), err
}

// Event describes the next hydraulic event in a step-by-step analysis.
type Event struct {
	Type     TimestepEvent
	Duration time.Duration
	// Element is the index of the tank or control causing the event, 0 if none.
	Element int
}

// TimeToNextEvent reports what will cause the next hydraulic step and when.
func (p *Project) TimeToNextEvent() (Event, error) {
	return get(p, "get time to next event", func(eng engine, ph uintptr) (Event, int32) {
		typ, d, elem, code := eng.TimeToNextEvent(ph)
		return Event{Type: TimestepEvent(typ), Duration: seconds(d), Element: int(elem)}, code
	})
}
