package epanet

// AddPattern adds a time pattern with a single multiplier of 1 and returns
// its index.
func (p *Project) AddPattern(id string) (int, error) {
	if err := checkStrings(id); err != nil {
		return 0, err
	}
	idx, err := get(p, "add pattern", func(eng engine, ph uintptr) (int32, int32) {
		if code := eng.AddPattern(ph, id); code != 0 {
			return 0, code
		}
		return eng.PatternIndex(ph, id)
	})
	return int(idx), err
}

func (p *Project) DeletePattern(index int) error {
	return p.call("delete pattern", func(eng engine, ph uintptr) int32 {
		return eng.DeletePattern(ph, int32(index))
	})
}

func (p *Project) PatternIndex(id string) (int, error) {
	if err := checkStrings(id); err != nil {
		return 0, err
	}
	idx, err := get(p, "get pattern index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.PatternIndex(ph, id)
	})
	return int(idx), err
}

func (p *Project) PatternID(index int) (string, error) {
	return get(p, "get pattern id", func(eng engine, ph uintptr) (string, int32) {
		return eng.PatternID(ph, int32(index))
	})
}

func (p *Project) SetPatternID(index int, id string) error {
	if err := checkStrings(id); err != nil {
		return err
	}
	return p.call("set pattern id", func(eng engine, ph uintptr) int32 {
		return eng.SetPatternID(ph, int32(index), id)
	})
}

// PatternLen returns the number of periods in a pattern.
func (p *Project) PatternLen(index int) (int, error) {
	n, err := get(p, "get pattern length", func(eng engine, ph uintptr) (int32, int32) {
		return eng.PatternLen(ph, int32(index))
	})
	return int(n), err
}

// PatternValue returns the multiplier of a 1-based period.
func (p *Project) PatternValue(index, period int) (float64, error) {
	return get(p, "get pattern value", func(eng engine, ph uintptr) (float64, int32) {
		return eng.PatternValue(ph, int32(index), int32(period))
	})
}

func (p *Project) SetPatternValue(index, period int, value float64) error {
	return p.call("set pattern value", func(eng engine, ph uintptr) int32 {
		return eng.SetPatternValue(ph, int32(index), int32(period), value)
	})
}

func (p *Project) AveragePatternValue(index int) (float64, error) {
	return get(p, "get average pattern value", func(eng engine, ph uintptr) (float64, int32) {
		return eng.AveragePatternValue(ph, int32(index))
	})
}

// Pattern returns every multiplier of a pattern.
func (p *Project) Pattern(index int) ([]float64, error) {
	return get(p, "get pattern", func(eng engine, ph uintptr) ([]float64, int32) {
		n, code := eng.PatternLen(ph, int32(index))
		if code != 0 {
			return nil, code
		}
		values := make([]float64, n)
		for i := range values {
			if values[i], code = eng.PatternValue(ph, int32(index), int32(i+1)); code != 0 {
				return nil, code
			}
		}
		return values, 0
	})
}

// SetPattern replaces all of a pattern's multipliers.
func (p *Project) SetPattern(index int, values []float64) error {
	return p.call("set pattern", func(eng engine, ph uintptr) int32 {
		return eng.SetPattern(ph, int32(index), values)
	})
}

// LoadPatternFile reads multipliers, one per line, from filename into the
// pattern id, creating it if needed. Requires EPANET 2.3.
func (p *Project) LoadPatternFile(filename, id string) error {
	if err := checkStrings(filename, id); err != nil {
		return err
	}
	return p.call("load pattern file", func(eng engine, ph uintptr) int32 {
		return eng.LoadPatternFile(ph, filename, id)
	})
}
