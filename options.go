package epanet

// Option returns the value of an analysis option.
func (p *Project) Option(opt AnalysisOption) (float64, error) {
	return get(p, "get option", func(eng engine, ph uintptr) (float64, int32) {
		return eng.Option(ph, int32(opt))
	})
}

func (p *Project) SetOption(opt AnalysisOption, value float64) error {
	return p.call("set option", func(eng engine, ph uintptr) int32 {
		return eng.SetOption(ph, int32(opt), value)
	})
}

func (p *Project) FlowUnits() (FlowUnits, error) {
	u, err := get(p, "get flow units", func(eng engine, ph uintptr) (int32, int32) {
		return eng.FlowUnits(ph)
	})
	return FlowUnits(u), err
}

// SetFlowUnits changes the flow units. Switching between US and SI flow units
// also converts every other unit of the network.
func (p *Project) SetFlowUnits(units FlowUnits) error {
	return p.call("set flow units", func(eng engine, ph uintptr) int32 {
		return eng.SetFlowUnits(ph, int32(units))
	})
}

// TimeParam returns a time parameter. Times are in seconds; TimePeriods and
// TimeHaltFlag are plain counts.
func (p *Project) TimeParam(param TimeParameter) (int64, error) {
	return get(p, "get time parameter", func(eng engine, ph uintptr) (int64, int32) {
		return eng.TimeParam(ph, int32(param))
	})
}

func (p *Project) SetTimeParam(param TimeParameter, value int64) error {
	return p.call("set time parameter", func(eng engine, ph uintptr) int32 {
		return eng.SetTimeParam(ph, int32(param), value)
	})
}

// QualityInfo describes the water quality analysis of a project.
type QualityInfo struct {
	Type      QualityType
	ChemName  string
	ChemUnits string
	// TraceNode is the index of the node traced in a QualityTrace analysis.
	TraceNode int
}

func (p *Project) QualityInfo() (QualityInfo, error) {
	return get(p, "get quality info", func(eng engine, ph uintptr) (QualityInfo, int32) {
		typ, name, units, trace, code := eng.QualityInfo(ph)
		return QualityInfo{
			Type:      QualityType(typ),
			ChemName:  name,
			ChemUnits: units,
			TraceNode: int(trace),
		}, code
	})
}

// QualityType returns the analysis type and, for source tracing, the index of
// the trace node.
func (p *Project) QualityType() (QualityType, int, error) {
	var typ, trace int32
	err := p.call("get quality type", func(eng engine, ph uintptr) (code int32) {
		typ, trace, code = eng.QualityType(ph)
		return code
	})
	if err != nil {
		return QualityNone, 0, err
	}
	return QualityType(typ), int(trace), nil
}

// SetQualityType sets the analysis type. chemName and chemUnits apply to
// QualityChem; traceNode is the ID of the traced node for QualityTrace.
func (p *Project) SetQualityType(typ QualityType, chemName, chemUnits, traceNode string) error {
	if err := checkStrings(chemName, chemUnits, traceNode); err != nil {
		return err
	}
	return p.call("set quality type", func(eng engine, ph uintptr) int32 {
		return eng.SetQualityType(ph, int32(typ), chemName, chemUnits, traceNode)
	})
}

// DemandModelInfo describes how demands are computed. The pressure fields are
// only used by PDA.
type DemandModelInfo struct {
	Model DemandModel
	// PressureMin is the pressure below which no demand is delivered.
	PressureMin float64
	// PressureRequired is the pressure needed to deliver full demand.
	PressureRequired float64
	PressureExponent float64
}

func (p *Project) DemandModel() (DemandModelInfo, error) {
	return get(p, "get demand model", func(eng engine, ph uintptr) (DemandModelInfo, int32) {
		model, pmin, preq, pexp, code := eng.DemandModel(ph)
		return DemandModelInfo{
			Model:            DemandModel(model),
			PressureMin:      pmin,
			PressureRequired: preq,
			PressureExponent: pexp,
		}, code
	})
}

func (p *Project) SetDemandModel(info DemandModelInfo) error {
	return p.call("set demand model", func(eng engine, ph uintptr) int32 {
		return eng.SetDemandModel(ph, int32(info.Model), info.PressureMin, info.PressureRequired, info.PressureExponent)
	})
}
