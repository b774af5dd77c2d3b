package epanet

// AddDemand appends a demand category to a junction. pattern is a pattern ID
// ("" for none) and name an optional category name.
func (p *Project) AddDemand(nodeIndex int, baseDemand float64, pattern, name string) error {
	if err := checkStrings(pattern, name); err != nil {
		return err
	}
	return p.call("add demand", func(eng engine, ph uintptr) int32 {
		return eng.AddDemand(ph, int32(nodeIndex), baseDemand, pattern, name)
	})
}

func (p *Project) DeleteDemand(nodeIndex, demandIndex int) error {
	return p.call("delete demand", func(eng engine, ph uintptr) int32 {
		return eng.DeleteDemand(ph, int32(nodeIndex), int32(demandIndex))
	})
}

// DemandIndex looks up a junction's demand category by name.
func (p *Project) DemandIndex(nodeIndex int, name string) (int, error) {
	if err := checkStrings(name); err != nil {
		return 0, err
	}
	idx, err := get(p, "get demand index", func(eng engine, ph uintptr) (int32, int32) {
		return eng.DemandIndex(ph, int32(nodeIndex), name)
	})
	return int(idx), err
}

func (p *Project) DemandCount(nodeIndex int) (int, error) {
	n, err := get(p, "get demand count", func(eng engine, ph uintptr) (int32, int32) {
		return eng.DemandCount(ph, int32(nodeIndex))
	})
	return int(n), err
}

func (p *Project) BaseDemand(nodeIndex, demandIndex int) (float64, error) {
	return get(p, "get base demand", func(eng engine, ph uintptr) (float64, int32) {
		return eng.BaseDemand(ph, int32(nodeIndex), int32(demandIndex))
	})
}

func (p *Project) SetBaseDemand(nodeIndex, demandIndex int, value float64) error {
	return p.call("set base demand", func(eng engine, ph uintptr) int32 {
		return eng.SetBaseDemand(ph, int32(nodeIndex), int32(demandIndex), value)
	})
}

// DemandPattern returns the pattern index of a demand category, 0 if none.
func (p *Project) DemandPattern(nodeIndex, demandIndex int) (int, error) {
	idx, err := get(p, "get demand pattern", func(eng engine, ph uintptr) (int32, int32) {
		return eng.DemandPattern(ph, int32(nodeIndex), int32(demandIndex))
	})
	return int(idx), err
}

func (p *Project) SetDemandPattern(nodeIndex, demandIndex, patternIndex int) error {
	return p.call("set demand pattern", func(eng engine, ph uintptr) int32 {
		return eng.SetDemandPattern(ph, int32(nodeIndex), int32(demandIndex), int32(patternIndex))
	})
}

func (p *Project) DemandName(nodeIndex, demandIndex int) (string, error) {
	return get(p, "get demand name", func(eng engine, ph uintptr) (string, int32) {
		return eng.DemandName(ph, int32(nodeIndex), int32(demandIndex))
	})
}

func (p *Project) SetDemandName(nodeIndex, demandIndex int, name string) error {
	if err := checkStrings(name); err != nil {
		return err
	}
	return p.call("set demand name", func(eng engine, ph uintptr) int32 {
		return eng.SetDemandName(ph, int32(nodeIndex), int32(demandIndex), name)
	})
}
