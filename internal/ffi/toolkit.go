package ffi

import (
	"sync"
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// Toolkit size limits (EN_SizeLimits)
const (
	MaxIDSize    = 31
	MaxMsgSize   = 255
	MaxTitleSize = 79
)

// CodeUnavailable is returned for optional symbols missing from the loaded library.
const CodeUnavailable int32 = -1

// Toolkit exposes the registered toolkit symbols with Go types.
// Every method returns the raw toolkit status code; zero means success.
type Toolkit struct{}

func idBuffer() []byte    { return make([]byte, MaxIDSize+1) }
func msgBuffer() []byte   { return make([]byte, MaxMsgSize+1) }
func titleBuffer() []byte { return make([]byte, MaxTitleSize+1) }

// ============================================================================
// Project
// ============================================================================

func (Toolkit) CreateProject() (uintptr, int32) {
	var ph uintptr
	code := fnCreateProject(&ph)
	return ph, code
}

func (Toolkit) DeleteProject(ph uintptr) int32 {
	return fnDeleteProject(ph)
}

func (Toolkit) Init(ph uintptr, rptFile, outFile string, unitsType, headLossType int32) int32 {
	rpt, out := cString(rptFile), cString(outFile)
	return fnInit(ph, &rpt[0], &out[0], unitsType, headLossType)
}

func (Toolkit) Open(ph uintptr, inpFile, rptFile, outFile string) int32 {
	inp, rpt, out := cString(inpFile), cString(rptFile), cString(outFile)
	return fnOpen(ph, &inp[0], &rpt[0], &out[0])
}

func (Toolkit) Close(ph uintptr) int32 {
	return fnClose(ph)
}

var (
	progressOnce sync.Once
	progressPtr  uintptr
	progressMu   sync.Mutex
	progressFn   atomic.Pointer[func(string)]
)

// progressCallback receives status lines from EN_runproject
func progressCallback(msg uintptr) {
	if fn := progressFn.Load(); fn != nil {
		(*fn)(goStringPtr(msg))
	}
}

// RunProject runs a complete simulation. When progress is non-nil it receives
// every status line the toolkit emits; such runs are serialized process-wide
// because the C callback carries no project context.
func (Toolkit) RunProject(ph uintptr, inpFile, rptFile, outFile string, progress func(string)) int32 {
	inp, rpt, out := cString(inpFile), cString(rptFile), cString(outFile)
	if progress == nil {
		return fnRunProject(ph, &inp[0], &rpt[0], &out[0], 0)
	}

	progressOnce.Do(func() {
		progressPtr = purego.NewCallback(progressCallback)
	})

	progressMu.Lock()
	defer progressMu.Unlock()
	progressFn.Store(&progress)
	defer progressFn.Store(nil)

	return fnRunProject(ph, &inp[0], &rpt[0], &out[0], progressPtr)
}

func (Toolkit) SaveInpFile(ph uintptr, filename string) int32 {
	f := cString(filename)
	return fnSaveInpFile(ph, &f[0])
}

func (Toolkit) Title(ph uintptr) ([3]string, int32) {
	l1, l2, l3 := titleBuffer(), titleBuffer(), titleBuffer()
	code := fnGetTitle(ph, &l1[0], &l2[0], &l3[0])
	return [3]string{goString(l1), goString(l2), goString(l3)}, code
}

func (Toolkit) SetTitle(ph uintptr, line1, line2, line3 string) int32 {
	l1, l2, l3 := cString(line1), cString(line2), cString(line3)
	return fnSetTitle(ph, &l1[0], &l2[0], &l3[0])
}

func (Toolkit) Comment(ph uintptr, object, index int32) (string, int32) {
	buf := msgBuffer()
	code := fnGetComment(ph, object, index, &buf[0])
	return goString(buf), code
}

func (Toolkit) SetComment(ph uintptr, object, index int32, comment string) int32 {
	c := cString(comment)
	return fnSetComment(ph, object, index, &c[0])
}

func (Toolkit) Count(ph uintptr, object int32) (int32, int32) {
	var n int32
	code := fnGetCount(ph, object, &n)
	return n, code
}

func (Toolkit) Version() (int32, int32) {
	var v int32
	code := fnGetVersion(&v)
	return v, code
}

func (Toolkit) ErrorMessage(errcode int32) (string, int32) {
	buf := msgBuffer()
	code := fnGetError(errcode, &buf[0], MaxMsgSize)
	return goString(buf), code
}

// ============================================================================
// Hydraulic Analysis
// ============================================================================

func (Toolkit) SolveH(ph uintptr) int32 { return fnSolveH(ph) }
func (Toolkit) OpenH(ph uintptr) int32  { return fnOpenH(ph) }
func (Toolkit) SaveH(ph uintptr) int32  { return fnSaveH(ph) }
func (Toolkit) CloseH(ph uintptr) int32 { return fnCloseH(ph) }

func (Toolkit) InitH(ph uintptr, initFlag int32) int32 {
	return fnInitH(ph, initFlag)
}

func (Toolkit) RunH(ph uintptr) (int64, int32) {
	var t cLong
	code := fnRunH(ph, &t)
	return int64(t), code
}

func (Toolkit) NextH(ph uintptr) (int64, int32) {
	var t cLong
	code := fnNextH(ph, &t)
	return int64(t), code
}

func (Toolkit) SaveHydFile(ph uintptr, filename string) int32 {
	f := cString(filename)
	return fnSaveHydFile(ph, &f[0])
}

func (Toolkit) UseHydFile(ph uintptr, filename string) int32 {
	f := cString(filename)
	return fnUseHydFile(ph, &f[0])
}

// ============================================================================
// Water Quality Analysis
// ============================================================================

func (Toolkit) SolveQ(ph uintptr) int32 { return fnSolveQ(ph) }
func (Toolkit) OpenQ(ph uintptr) int32  { return fnOpenQ(ph) }
func (Toolkit) CloseQ(ph uintptr) int32 { return fnCloseQ(ph) }

func (Toolkit) InitQ(ph uintptr, saveFlag int32) int32 {
	return fnInitQ(ph, saveFlag)
}

func (Toolkit) RunQ(ph uintptr) (int64, int32) {
	var t cLong
	code := fnRunQ(ph, &t)
	return int64(t), code
}

func (Toolkit) NextQ(ph uintptr) (int64, int32) {
	var t cLong
	code := fnNextQ(ph, &t)
	return int64(t), code
}

func (Toolkit) StepQ(ph uintptr) (int64, int32) {
	var t cLong
	code := fnStepQ(ph, &t)
	return int64(t), code
}

// ============================================================================
// Reporting
// ============================================================================

func (Toolkit) WriteLine(ph uintptr, line string) int32 {
	l := cString(line)
	return fnWriteLine(ph, &l[0])
}

func (Toolkit) Report(ph uintptr) int32      { return fnReport(ph) }
func (Toolkit) ClearReport(ph uintptr) int32 { return fnClearReport(ph) }
func (Toolkit) ResetReport(ph uintptr) int32 { return fnResetReport(ph) }

func (Toolkit) CopyReport(ph uintptr, filename string) int32 {
	f := cString(filename)
	return fnCopyReport(ph, &f[0])
}

func (Toolkit) SetReport(ph uintptr, format string) int32 {
	f := cString(format)
	return fnSetReport(ph, &f[0])
}

func (Toolkit) SetStatusReport(ph uintptr, level int32) int32 {
	return fnSetStatusReport(ph, level)
}

func (Toolkit) Statistic(ph uintptr, statType int32) (float64, int32) {
	var v float64
	code := fnGetStatistic(ph, statType, &v)
	return v, code
}

func (Toolkit) ResultIndex(ph uintptr, resultType, index int32) (int32, int32) {
	var v int32
	code := fnGetResultIndex(ph, resultType, index, &v)
	return v, code
}

func (Toolkit) TimeToNextEvent(ph uintptr) (eventType int32, duration int64, element int32, code int32) {
	var d cLong
	code = fnTimeToNextEvent(ph, &eventType, &d, &element)
	return eventType, int64(d), element, code
}

// ============================================================================
// Analysis Options
// ============================================================================

func (Toolkit) Option(ph uintptr, option int32) (float64, int32) {
	var v float64
	code := fnGetOption(ph, option, &v)
	return v, code
}

func (Toolkit) SetOption(ph uintptr, option int32, value float64) int32 {
	return fnSetOption(ph, option, value)
}

func (Toolkit) FlowUnits(ph uintptr) (int32, int32) {
	var u int32
	code := fnGetFlowUnits(ph, &u)
	return u, code
}

func (Toolkit) SetFlowUnits(ph uintptr, units int32) int32 {
	return fnSetFlowUnits(ph, units)
}

func (Toolkit) TimeParam(ph uintptr, param int32) (int64, int32) {
	var v cLong
	code := fnGetTimeParam(ph, param, &v)
	return int64(v), code
}

func (Toolkit) SetTimeParam(ph uintptr, param int32, value int64) int32 {
	return fnSetTimeParam(ph, param, cLong(value))
}

func (Toolkit) QualityInfo(ph uintptr) (qualType int32, chemName, chemUnits string, traceNode int32, code int32) {
	name, units := idBuffer(), idBuffer()
	code = fnGetQualInfo(ph, &qualType, &name[0], &units[0], &traceNode)
	return qualType, goString(name), goString(units), traceNode, code
}

func (Toolkit) QualityType(ph uintptr) (qualType, traceNode int32, code int32) {
	code = fnGetQualType(ph, &qualType, &traceNode)
	return qualType, traceNode, code
}

func (Toolkit) SetQualityType(ph uintptr, qualType int32, chemName, chemUnits, traceNode string) int32 {
	name, units, trace := cString(chemName), cString(chemUnits), cString(traceNode)
	return fnSetQualType(ph, qualType, &name[0], &units[0], &trace[0])
}

func (Toolkit) DemandModel(ph uintptr) (modelType int32, pmin, preq, pexp float64, code int32) {
	code = fnGetDemandModel(ph, &modelType, &pmin, &preq, &pexp)
	return modelType, pmin, preq, pexp, code
}

func (Toolkit) SetDemandModel(ph uintptr, modelType int32, pmin, preq, pexp float64) int32 {
	return fnSetDemandModel(ph, modelType, pmin, preq, pexp)
}

// ============================================================================
// Nodes
// ============================================================================

func (Toolkit) AddNode(ph uintptr, id string, nodeType int32) (int32, int32) {
	var index int32
	s := cString(id)
	code := fnAddNode(ph, &s[0], nodeType, &index)
	return index, code
}

func (Toolkit) DeleteNode(ph uintptr, index, actionCode int32) int32 {
	return fnDeleteNode(ph, index, actionCode)
}

func (Toolkit) NodeIndex(ph uintptr, id string) (int32, int32) {
	var index int32
	s := cString(id)
	code := fnGetNodeIndex(ph, &s[0], &index)
	return index, code
}

func (Toolkit) NodeID(ph uintptr, index int32) (string, int32) {
	buf := idBuffer()
	code := fnGetNodeID(ph, index, &buf[0])
	return goString(buf), code
}

func (Toolkit) SetNodeID(ph uintptr, index int32, id string) int32 {
	s := cString(id)
	return fnSetNodeID(ph, index, &s[0])
}

func (Toolkit) NodeType(ph uintptr, index int32) (int32, int32) {
	var t int32
	code := fnGetNodeType(ph, index, &t)
	return t, code
}

func (Toolkit) NodeValue(ph uintptr, index, property int32) (float64, int32) {
	var v float64
	code := fnGetNodeValue(ph, index, property, &v)
	return v, code
}

// NodeValues fills one value per node; count must equal the node count.
func (Toolkit) NodeValues(ph uintptr, property, count int32) ([]float64, int32) {
	if count <= 0 {
		return nil, 0
	}
	values := make([]float64, count)
	if fnGetNodeValues == nil {
		// EPANET 2.2 has no bulk getter
		for i := range values {
			if code := fnGetNodeValue(ph, int32(i+1), property, &values[i]); code != 0 {
				return nil, code
			}
		}
		return values, 0
	}
	code := fnGetNodeValues(ph, property, &values[0])
	return values, code
}

func (Toolkit) SetNodeValue(ph uintptr, index, property int32, value float64) int32 {
	return fnSetNodeValue(ph, index, property, value)
}

func (Toolkit) SetJunctionData(ph uintptr, index int32, elev, demand float64, pattern string) int32 {
	p := cString(pattern)
	return fnSetJuncData(ph, index, elev, demand, &p[0])
}

func (Toolkit) SetTankData(ph uintptr, index int32, elev, initLvl, minLvl, maxLvl, diam, minVol float64, volCurve string) int32 {
	c := cString(volCurve)
	return fnSetTankData(ph, index, elev, initLvl, minLvl, maxLvl, diam, minVol, &c[0])
}

func (Toolkit) Coord(ph uintptr, index int32) (x, y float64, code int32) {
	code = fnGetCoord(ph, index, &x, &y)
	return x, y, code
}

func (Toolkit) SetCoord(ph uintptr, index int32, x, y float64) int32 {
	return fnSetCoord(ph, index, x, y)
}

// ============================================================================
// Nodal Demands
// ============================================================================

func (Toolkit) AddDemand(ph uintptr, nodeIndex int32, baseDemand float64, pattern, name string) int32 {
	p, n := cString(pattern), cString(name)
	return fnAddDemand(ph, nodeIndex, baseDemand, &p[0], &n[0])
}

func (Toolkit) DeleteDemand(ph uintptr, nodeIndex, demandIndex int32) int32 {
	return fnDeleteDemand(ph, nodeIndex, demandIndex)
}

func (Toolkit) DemandIndex(ph uintptr, nodeIndex int32, name string) (int32, int32) {
	var index int32
	n := cString(name)
	code := fnGetDemandIndex(ph, nodeIndex, &n[0], &index)
	return index, code
}

func (Toolkit) DemandCount(ph uintptr, nodeIndex int32) (int32, int32) {
	var n int32
	code := fnGetNumDemands(ph, nodeIndex, &n)
	return n, code
}

func (Toolkit) BaseDemand(ph uintptr, nodeIndex, demandIndex int32) (float64, int32) {
	var v float64
	code := fnGetBaseDemand(ph, nodeIndex, demandIndex, &v)
	return v, code
}

func (Toolkit) SetBaseDemand(ph uintptr, nodeIndex, demandIndex int32, value float64) int32 {
	return fnSetBaseDemand(ph, nodeIndex, demandIndex, value)
}

func (Toolkit) DemandPattern(ph uintptr, nodeIndex, demandIndex int32) (int32, int32) {
	var p int32
	code := fnGetDemandPattern(ph, nodeIndex, demandIndex, &p)
	return p, code
}

func (Toolkit) SetDemandPattern(ph uintptr, nodeIndex, demandIndex, pattern int32) int32 {
	return fnSetDemandPattern(ph, nodeIndex, demandIndex, pattern)
}

func (Toolkit) DemandName(ph uintptr, nodeIndex, demandIndex int32) (string, int32) {
	buf := idBuffer()
	code := fnGetDemandName(ph, nodeIndex, demandIndex, &buf[0])
	return goString(buf), code
}

func (Toolkit) SetDemandName(ph uintptr, nodeIndex, demandIndex int32, name string) int32 {
	n := cString(name)
	return fnSetDemandName(ph, nodeIndex, demandIndex, &n[0])
}

// ============================================================================
// Links
// ============================================================================

func (Toolkit) AddLink(ph uintptr, id string, linkType int32, fromNode, toNode string) (int32, int32) {
	var index int32
	s, from, to := cString(id), cString(fromNode), cString(toNode)
	code := fnAddLink(ph, &s[0], linkType, &from[0], &to[0], &index)
	return index, code
}

func (Toolkit) DeleteLink(ph uintptr, index, actionCode int32) int32 {
	return fnDeleteLink(ph, index, actionCode)
}

func (Toolkit) LinkIndex(ph uintptr, id string) (int32, int32) {
	var index int32
	s := cString(id)
	code := fnGetLinkIndex(ph, &s[0], &index)
	return index, code
}

func (Toolkit) LinkID(ph uintptr, index int32) (string, int32) {
	buf := idBuffer()
	code := fnGetLinkID(ph, index, &buf[0])
	return goString(buf), code
}

func (Toolkit) SetLinkID(ph uintptr, index int32, id string) int32 {
	s := cString(id)
	return fnSetLinkID(ph, index, &s[0])
}

func (Toolkit) LinkType(ph uintptr, index int32) (int32, int32) {
	var t int32
	code := fnGetLinkType(ph, index, &t)
	return t, code
}

// SetLinkType replaces a link's type; the toolkit may move the link to a new index.
func (Toolkit) SetLinkType(ph uintptr, index, linkType, actionCode int32) (int32, int32) {
	code := fnSetLinkType(ph, &index, linkType, actionCode)
	return index, code
}

func (Toolkit) LinkNodes(ph uintptr, index int32) (node1, node2 int32, code int32) {
	code = fnGetLinkNodes(ph, index, &node1, &node2)
	return node1, node2, code
}

func (Toolkit) SetLinkNodes(ph uintptr, index, node1, node2 int32) int32 {
	return fnSetLinkNodes(ph, index, node1, node2)
}

func (Toolkit) LinkValue(ph uintptr, index, property int32) (float64, int32) {
	var v float64
	code := fnGetLinkValue(ph, index, property, &v)
	return v, code
}

// LinkValues fills one value per link; count must equal the link count.
func (Toolkit) LinkValues(ph uintptr, property, count int32) ([]float64, int32) {
	if count <= 0 {
		return nil, 0
	}
	values := make([]float64, count)
	if fnGetLinkValues == nil {
		for i := range values {
			if code := fnGetLinkValue(ph, int32(i+1), property, &values[i]); code != 0 {
				return nil, code
			}
		}
		return values, 0
	}
	code := fnGetLinkValues(ph, property, &values[0])
	return values, code
}

func (Toolkit) SetLinkValue(ph uintptr, index, property int32, value float64) int32 {
	return fnSetLinkValue(ph, index, property, value)
}

func (Toolkit) SetPipeData(ph uintptr, index int32, length, diam, rough, mloss float64) int32 {
	return fnSetPipeData(ph, index, length, diam, rough, mloss)
}

func (Toolkit) PumpType(ph uintptr, index int32) (int32, int32) {
	var t int32
	code := fnGetPumpType(ph, index, &t)
	return t, code
}

func (Toolkit) HeadCurveIndex(ph uintptr, linkIndex int32) (int32, int32) {
	var c int32
	code := fnGetHeadCurveIndex(ph, linkIndex, &c)
	return c, code
}

func (Toolkit) SetHeadCurveIndex(ph uintptr, linkIndex, curveIndex int32) int32 {
	return fnSetHeadCurveIndex(ph, linkIndex, curveIndex)
}

func (Toolkit) VertexCount(ph uintptr, index int32) (int32, int32) {
	var n int32
	code := fnGetVertexCount(ph, index, &n)
	return n, code
}

func (Toolkit) Vertex(ph uintptr, index, vertex int32) (x, y float64, code int32) {
	code = fnGetVertex(ph, index, vertex, &x, &y)
	return x, y, code
}

func (Toolkit) SetVertex(ph uintptr, index, vertex int32, x, y float64) int32 {
	if fnSetVertex == nil {
		return CodeUnavailable
	}
	return fnSetVertex(ph, index, vertex, x, y)
}

func (Toolkit) SetVertices(ph uintptr, index int32, x, y []float64) int32 {
	if len(x) == 0 {
		return fnSetVertices(ph, index, nil, nil, 0)
	}
	return fnSetVertices(ph, index, &x[0], &y[0], int32(len(x)))
}

// ============================================================================
// Time Patterns
// ============================================================================

func (Toolkit) AddPattern(ph uintptr, id string) int32 {
	s := cString(id)
	return fnAddPattern(ph, &s[0])
}

func (Toolkit) DeletePattern(ph uintptr, index int32) int32 {
	return fnDeletePattern(ph, index)
}

func (Toolkit) PatternIndex(ph uintptr, id string) (int32, int32) {
	var index int32
	s := cString(id)
	code := fnGetPatternIndex(ph, &s[0], &index)
	return index, code
}

func (Toolkit) PatternID(ph uintptr, index int32) (string, int32) {
	buf := idBuffer()
	code := fnGetPatternID(ph, index, &buf[0])
	return goString(buf), code
}

func (Toolkit) SetPatternID(ph uintptr, index int32, id string) int32 {
	s := cString(id)
	return fnSetPatternID(ph, index, &s[0])
}

func (Toolkit) PatternLen(ph uintptr, index int32) (int32, int32) {
	var n int32
	code := fnGetPatternLen(ph, index, &n)
	return n, code
}

func (Toolkit) PatternValue(ph uintptr, index, period int32) (float64, int32) {
	var v float64
	code := fnGetPatternValue(ph, index, period, &v)
	return v, code
}

func (Toolkit) SetPatternValue(ph uintptr, index, period int32, value float64) int32 {
	return fnSetPatternValue(ph, index, period, value)
}

func (Toolkit) AveragePatternValue(ph uintptr, index int32) (float64, int32) {
	var v float64
	code := fnGetAveragePatternValue(ph, index, &v)
	return v, code
}

func (Toolkit) SetPattern(ph uintptr, index int32, values []float64) int32 {
	if len(values) == 0 {
		return fnSetPattern(ph, index, nil, 0)
	}
	return fnSetPattern(ph, index, &values[0], int32(len(values)))
}

func (Toolkit) LoadPatternFile(ph uintptr, filename, id string) int32 {
	if fnLoadPatternFile == nil {
		return CodeUnavailable
	}
	f, s := cString(filename), cString(id)
	return fnLoadPatternFile(ph, &f[0], &s[0])
}

// ============================================================================
// Data Curves
// ============================================================================

func (Toolkit) AddCurve(ph uintptr, id string) int32 {
	s := cString(id)
	return fnAddCurve(ph, &s[0])
}

func (Toolkit) DeleteCurve(ph uintptr, index int32) int32 {
	return fnDeleteCurve(ph, index)
}

func (Toolkit) CurveIndex(ph uintptr, id string) (int32, int32) {
	var index int32
	s := cString(id)
	code := fnGetCurveIndex(ph, &s[0], &index)
	return index, code
}

func (Toolkit) CurveID(ph uintptr, index int32) (string, int32) {
	buf := idBuffer()
	code := fnGetCurveID(ph, index, &buf[0])
	return goString(buf), code
}

func (Toolkit) SetCurveID(ph uintptr, index int32, id string) int32 {
	s := cString(id)
	return fnSetCurveID(ph, index, &s[0])
}

func (Toolkit) CurveLen(ph uintptr, index int32) (int32, int32) {
	var n int32
	code := fnGetCurveLen(ph, index, &n)
	return n, code
}

func (Toolkit) CurveType(ph uintptr, index int32) (int32, int32) {
	var t int32
	code := fnGetCurveType(ph, index, &t)
	return t, code
}

func (Toolkit) SetCurveType(ph uintptr, index, curveType int32) int32 {
	if fnSetCurveType == nil {
		return CodeUnavailable
	}
	return fnSetCurveType(ph, index, curveType)
}

func (Toolkit) CurveValue(ph uintptr, curveIndex, pointIndex int32) (x, y float64, code int32) {
	code = fnGetCurveValue(ph, curveIndex, pointIndex, &x, &y)
	return x, y, code
}

func (Toolkit) SetCurveValue(ph uintptr, curveIndex, pointIndex int32, x, y float64) int32 {
	return fnSetCurveValue(ph, curveIndex, pointIndex, x, y)
}

// Curve reads a curve's id and points in one call.
func (Toolkit) Curve(ph uintptr, index int32) (id string, x, y []float64, code int32) {
	var n int32
	if code = fnGetCurveLen(ph, index, &n); code != 0 {
		return "", nil, nil, code
	}
	buf := idBuffer()
	if n == 0 {
		code = fnGetCurveID(ph, index, &buf[0])
		return goString(buf), nil, nil, code
	}
	x, y = make([]float64, n), make([]float64, n)
	code = fnGetCurve(ph, index, &buf[0], &n, &x[0], &y[0])
	return goString(buf), x[:n], y[:n], code
}

func (Toolkit) SetCurve(ph uintptr, index int32, x, y []float64) int32 {
	if len(x) == 0 {
		return fnSetCurve(ph, index, nil, nil, 0)
	}
	return fnSetCurve(ph, index, &x[0], &y[0], int32(len(x)))
}

// ============================================================================
// Simple Controls
// ============================================================================

func (Toolkit) AddControl(ph uintptr, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) (int32, int32) {
	var index int32
	code := fnAddControl(ph, controlType, linkIndex, setting, nodeIndex, level, &index)
	return index, code
}

func (Toolkit) DeleteControl(ph uintptr, index int32) int32 {
	return fnDeleteControl(ph, index)
}

func (Toolkit) Control(ph uintptr, index int32) (controlType, linkIndex int32, setting float64, nodeIndex int32, level float64, code int32) {
	code = fnGetControl(ph, index, &controlType, &linkIndex, &setting, &nodeIndex, &level)
	return controlType, linkIndex, setting, nodeIndex, level, code
}

func (Toolkit) SetControl(ph uintptr, index, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) int32 {
	return fnSetControl(ph, index, controlType, linkIndex, setting, nodeIndex, level)
}

func (Toolkit) ControlEnabled(ph uintptr, index int32) (int32, int32) {
	if fnGetControlEnabled == nil {
		return 0, CodeUnavailable
	}
	var enabled int32
	code := fnGetControlEnabled(ph, index, &enabled)
	return enabled, code
}

func (Toolkit) SetControlEnabled(ph uintptr, index, enabled int32) int32 {
	if fnSetControlEnabled == nil {
		return CodeUnavailable
	}
	return fnSetControlEnabled(ph, index, enabled)
}

// ============================================================================
// Rule-Based Controls
// ============================================================================

func (Toolkit) AddRule(ph uintptr, rule string) int32 {
	r := cString(rule)
	return fnAddRule(ph, &r[0])
}

func (Toolkit) DeleteRule(ph uintptr, index int32) int32 {
	return fnDeleteRule(ph, index)
}

func (Toolkit) Rule(ph uintptr, index int32) (nPremises, nThen, nElse int32, priority float64, code int32) {
	code = fnGetRule(ph, index, &nPremises, &nThen, &nElse, &priority)
	return nPremises, nThen, nElse, priority, code
}

func (Toolkit) RuleID(ph uintptr, index int32) (string, int32) {
	buf := idBuffer()
	code := fnGetRuleID(ph, index, &buf[0])
	return goString(buf), code
}

// PremiseC mirrors the out-parameters of EN_getpremise
type PremiseC struct {
	LogOp    int32
	Object   int32
	ObjIndex int32
	Variable int32
	RelOp    int32
	Status   int32
	Value    float64
}

func (Toolkit) Premise(ph uintptr, ruleIndex, premiseIndex int32) (PremiseC, int32) {
	var p PremiseC
	code := fnGetPremise(ph, ruleIndex, premiseIndex, &p.LogOp, &p.Object, &p.ObjIndex, &p.Variable, &p.RelOp, &p.Status, &p.Value)
	return p, code
}

func (Toolkit) SetPremise(ph uintptr, ruleIndex, premiseIndex int32, p PremiseC) int32 {
	return fnSetPremise(ph, ruleIndex, premiseIndex, p.LogOp, p.Object, p.ObjIndex, p.Variable, p.RelOp, p.Status, p.Value)
}

func (Toolkit) ThenAction(ph uintptr, ruleIndex, actionIndex int32) (linkIndex, status int32, setting float64, code int32) {
	code = fnGetThenAction(ph, ruleIndex, actionIndex, &linkIndex, &status, &setting)
	return linkIndex, status, setting, code
}

func (Toolkit) SetThenAction(ph uintptr, ruleIndex, actionIndex, linkIndex, status int32, setting float64) int32 {
	return fnSetThenAction(ph, ruleIndex, actionIndex, linkIndex, status, setting)
}

func (Toolkit) ElseAction(ph uintptr, ruleIndex, actionIndex int32) (linkIndex, status int32, setting float64, code int32) {
	code = fnGetElseAction(ph, ruleIndex, actionIndex, &linkIndex, &status, &setting)
	return linkIndex, status, setting, code
}

func (Toolkit) SetElseAction(ph uintptr, ruleIndex, actionIndex, linkIndex, status int32, setting float64) int32 {
	return fnSetElseAction(ph, ruleIndex, actionIndex, linkIndex, status, setting)
}

func (Toolkit) SetRulePriority(ph uintptr, index int32, priority float64) int32 {
	return fnSetRulePriority(ph, index, priority)
}

func (Toolkit) RuleEnabled(ph uintptr, index int32) (int32, int32) {
	if fnGetRuleEnabled == nil {
		return 0, CodeUnavailable
	}
	var enabled int32
	code := fnGetRuleEnabled(ph, index, &enabled)
	return enabled, code
}

func (Toolkit) SetRuleEnabled(ph uintptr, index, enabled int32) int32 {
	if fnSetRuleEnabled == nil {
		return CodeUnavailable
	}
	return fnSetRuleEnabled(ph, index, enabled)
}
