package epanet

import (
	"github.com/agiangrant/epanet/internal/ffi"
)

// engine is the toolkit surface a Project drives. ffi.Toolkit is the native
// implementation; every method returns the toolkit status code last.
type engine interface {
	CreateProject() (uintptr, int32)
	DeleteProject(ph uintptr) int32
	Init(ph uintptr, rptFile, outFile string, unitsType, headLossType int32) int32
	Open(ph uintptr, inpFile, rptFile, outFile string) int32
	Close(ph uintptr) int32
	RunProject(ph uintptr, inpFile, rptFile, outFile string, progress func(string)) int32
	SaveInpFile(ph uintptr, filename string) int32
	Title(ph uintptr) ([3]string, int32)
	SetTitle(ph uintptr, line1, line2, line3 string) int32
	Comment(ph uintptr, object, index int32) (string, int32)
	SetComment(ph uintptr, object, index int32, comment string) int32
	Count(ph uintptr, object int32) (int32, int32)
	Version() (int32, int32)
	ErrorMessage(errcode int32) (string, int32)

	SolveH(ph uintptr) int32
	OpenH(ph uintptr) int32
	InitH(ph uintptr, initFlag int32) int32
	RunH(ph uintptr) (int64, int32)
	NextH(ph uintptr) (int64, int32)
	SaveH(ph uintptr) int32
	SaveHydFile(ph uintptr, filename string) int32
	UseHydFile(ph uintptr, filename string) int32
	CloseH(ph uintptr) int32

	SolveQ(ph uintptr) int32
	OpenQ(ph uintptr) int32
	InitQ(ph uintptr, saveFlag int32) int32
	RunQ(ph uintptr) (int64, int32)
	NextQ(ph uintptr) (int64, int32)
	StepQ(ph uintptr) (int64, int32)
	CloseQ(ph uintptr) int32

	WriteLine(ph uintptr, line string) int32
	Report(ph uintptr) int32
	CopyReport(ph uintptr, filename string) int32
	ClearReport(ph uintptr) int32
	ResetReport(ph uintptr) int32
	SetReport(ph uintptr, format string) int32
	SetStatusReport(ph uintptr, level int32) int32
	Statistic(ph uintptr, statType int32) (float64, int32)
	ResultIndex(ph uintptr, resultType, index int32) (int32, int32)
	TimeToNextEvent(ph uintptr) (eventType int32, duration int64, element int32, code int32)

	Option(ph uintptr, option int32) (float64, int32)
	SetOption(ph uintptr, option int32, value float64) int32
	FlowUnits(ph uintptr) (int32, int32)
	SetFlowUnits(ph uintptr, units int32) int32
	TimeParam(ph uintptr, param int32) (int64, int32)
	SetTimeParam(ph uintptr, param int32, value int64) int32
	QualityInfo(ph uintptr) (qualType int32, chemName, chemUnits string, traceNode int32, code int32)
	QualityType(ph uintptr) (qualType, traceNode int32, code int32)
	SetQualityType(ph uintptr, qualType int32, chemName, chemUnits, traceNode string) int32
	DemandModel(ph uintptr) (modelType int32, pmin, preq, pexp float64, code int32)
	SetDemandModel(ph uintptr, modelType int32, pmin, preq, pexp float64) int32

	AddNode(ph uintptr, id string, nodeType int32) (int32, int32)
	DeleteNode(ph uintptr, index, actionCode int32) int32
	NodeIndex(ph uintptr, id string) (int32, int32)
	NodeID(ph uintptr, index int32) (string, int32)
	SetNodeID(ph uintptr, index int32, id string) int32
	NodeType(ph uintptr, index int32) (int32, int32)
	NodeValue(ph uintptr, index, property int32) (float64, int32)
	NodeValues(ph uintptr, property, count int32) ([]float64, int32)
	SetNodeValue(ph uintptr, index, property int32, value float64) int32
	SetJunctionData(ph uintptr, index int32, elev, demand float64, pattern string) int32
	SetTankData(ph uintptr, index int32, elev, initLvl, minLvl, maxLvl, diam, minVol float64, volCurve string) int32
	Coord(ph uintptr, index int32) (x, y float64, code int32)
	SetCoord(ph uintptr, index int32, x, y float64) int32

	AddDemand(ph uintptr, nodeIndex int32, baseDemand float64, pattern, name string) int32
	DeleteDemand(ph uintptr, nodeIndex, demandIndex int32) int32
	DemandIndex(ph uintptr, nodeIndex int32, name string) (int32, int32)
	DemandCount(ph uintptr, nodeIndex int32) (int32, int32)
	BaseDemand(ph uintptr, nodeIndex, demandIndex int32) (float64, int32)
	SetBaseDemand(ph uintptr, nodeIndex, demandIndex int32, value float64) int32
	DemandPattern(ph uintptr, nodeIndex, demandIndex int32) (int32, int32)
	SetDemandPattern(ph uintptr, nodeIndex, demandIndex, pattern int32) int32
	DemandName(ph uintptr, nodeIndex, demandIndex int32) (string, int32)
	SetDemandName(ph uintptr, nodeIndex, demandIndex int32, name string) int32

	AddLink(ph uintptr, id string, linkType int32, fromNode, toNode string) (int32, int32)
	DeleteLink(ph uintptr, index, actionCode int32) int32
	LinkIndex(ph uintptr, id string) (int32, int32)
	LinkID(ph uintptr, index int32) (string, int32)
	SetLinkID(ph uintptr, index int32, id string) int32
	LinkType(ph uintptr, index int32) (int32, int32)
	SetLinkType(ph uintptr, index, linkType, actionCode int32) (int32, int32)
	LinkNodes(ph uintptr, index int32) (node1, node2 int32, code int32)
	SetLinkNodes(ph uintptr, index, node1, node2 int32) int32
	LinkValue(ph uintptr, index, property int32) (float64, int32)
	LinkValues(ph uintptr, property, count int32) ([]float64, int32)
	SetLinkValue(ph uintptr, index, property int32, value float64) int32
	SetPipeData(ph uintptr, index int32, length, diam, rough, mloss float64) int32
	PumpType(ph uintptr, index int32) (int32, int32)
	HeadCurveIndex(ph uintptr, linkIndex int32) (int32, int32)
	SetHeadCurveIndex(ph uintptr, linkIndex, curveIndex int32) int32
	VertexCount(ph uintptr, index int32) (int32, int32)
	Vertex(ph uintptr, index, vertex int32) (x, y float64, code int32)
	SetVertex(ph uintptr, index, vertex int32, x, y float64) int32
	SetVertices(ph uintptr, index int32, x, y []float64) int32

	AddPattern(ph uintptr, id string) int32
	DeletePattern(ph uintptr, index int32) int32
	PatternIndex(ph uintptr, id string) (int32, int32)
	PatternID(ph uintptr, index int32) (string, int32)
	SetPatternID(ph uintptr, index int32, id string) int32
	PatternLen(ph uintptr, index int32) (int32, int32)
	PatternValue(ph uintptr, index, period int32) (float64, int32)
	SetPatternValue(ph uintptr, index, period int32, value float64) int32
	AveragePatternValue(ph uintptr, index int32) (float64, int32)
	SetPattern(ph uintptr, index int32, values []float64) int32
	LoadPatternFile(ph uintptr, filename, id string) int32

	AddCurve(ph uintptr, id string) int32
	DeleteCurve(ph uintptr, index int32) int32
	CurveIndex(ph uintptr, id string) (int32, int32)
	CurveID(ph uintptr, index int32) (string, int32)
	SetCurveID(ph uintptr, index int32, id string) int32
	CurveLen(ph uintptr, index int32) (int32, int32)
	CurveType(ph uintptr, index int32) (int32, int32)
	SetCurveType(ph uintptr, index, curveType int32) int32
	CurveValue(ph uintptr, curveIndex, pointIndex int32) (x, y float64, code int32)
	SetCurveValue(ph uintptr, curveIndex, pointIndex int32, x, y float64) int32
	Curve(ph uintptr, index int32) (id string, x, y []float64, code int32)
	SetCurve(ph uintptr, index int32, x, y []float64) int32

	AddControl(ph uintptr, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) (int32, int32)
	DeleteControl(ph uintptr, index int32) int32
	Control(ph uintptr, index int32) (controlType, linkIndex int32, setting float64, nodeIndex int32, level float64, code int32)
	SetControl(ph uintptr, index, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) int32
	ControlEnabled(ph uintptr, index int32) (int32, int32)
	SetControlEnabled(ph uintptr, index, enabled int32) int32

	AddRule(ph uintptr, rule string) int32
	DeleteRule(ph uintptr, index int32) int32
	Rule(ph uintptr, index int32) (nPremises, nThen, nElse int32, priority float64, code int32)
	RuleID(ph uintptr, index int32) (string, int32)
	Premise(ph uintptr, ruleIndex, premiseIndex int32) (ffi.PremiseC, int32)
	SetPremise(ph uintptr, ruleIndex, premiseIndex int32, p ffi.PremiseC) int32
	ThenAction(ph uintptr, ruleIndex, actionIndex int32) (linkIndex, status int32, setting float64, code int32)
	SetThenAction(ph uintptr, ruleIndex, actionIndex, linkIndex, status int32, setting float64) int32
	ElseAction(ph uintptr, ruleIndex, actionIndex int32) (linkIndex, status int32, setting float64, code int32)
	SetElseAction(ph uintptr, ruleIndex, actionIndex, linkIndex, status int32, setting float64) int32
	SetRulePriority(ph uintptr, index int32, priority float64) int32
	RuleEnabled(ph uintptr, index int32) (int32, int32)
	SetRuleEnabled(ph uintptr, index, enabled int32) int32
}

var _ engine = ffi.Toolkit{}

// loadEngine returns the native toolkit, loading the shared library on first use.
func loadEngine() (engine, error) {
	tk, err := ffi.Load()
	if err != nil {
		return nil, &LoadError{Path: ffi.Path(), Err: err}
	}
	return tk, nil
}

// LoadLibrary loads the toolkit library from path, or from the default search
// locations when path is empty. Calling it is optional: constructors load the
// library on demand. Only the first successful or failed load counts.
func LoadLibrary(path string) error {
	if path != "" {
		ffi.SetLibraryPath(path)
	}
	_, err := loadEngine()
	if err == nil {
		Logger().Debug("epanet library loaded")
	}
	return err
}

// LibraryPath reports where the toolkit library was loaded from.
func LibraryPath() string {
	return ffi.Path()
}

// ToolkitVersion returns the toolkit version number (e.g. 20300 for 2.3.0).
func ToolkitVersion() (int, error) {
	eng, err := loadEngine()
	if err != nil {
		return 0, err
	}
	v, code := eng.Version()
	if code != 0 {
		return 0, newError(eng, code)
	}
	return int(v), nil
}
