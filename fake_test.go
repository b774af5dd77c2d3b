package epanet

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/agiangrant/epanet/internal/ffi"
)

type fakeNode struct {
	id      string
	typ     int32
	values  map[int32]float64
	demands []fakeDemand
}

type fakeDemand struct {
	base    float64
	pattern int32
	name    string
}

type fakeLink struct {
	id       string
	typ      int32
	from, to int32
	values   map[int32]float64
	vx, vy   []float64
}

type fakeCurve struct {
	id   string
	typ  int32
	x, y []float64
}

type fakeControl struct {
	typ, link, node int32
	setting, level  float64
	enabled         int32
}

type fakeAction struct {
	link, status int32
	setting      float64
}

type fakeRule struct {
	id       string
	premises []ffi.PremiseC
	then     []fakeAction
	els      []fakeAction
	priority float64
	enabled  int32
}

// fakeEngine is an in-memory stand-in for the native toolkit. Methods the
// tests do not need fall through to the nil embedded engine and panic.
type fakeEngine struct {
	engine

	mu       sync.Mutex
	handles  uintptr
	created  int
	closed   map[uintptr]int
	deleted  map[uintptr]int
	messages map[int32]string
	calls    int

	createCode int32
	openCode   int32
	initCode   int32
	// v22 makes the 2.3-only functions report themselves unavailable.
	v22 bool

	title    [3]string
	nodes    []fakeNode
	links    []fakeLink
	patterns map[string][]float64
	patOrder []string
	curves   []fakeCurve
	controls []fakeControl
	rules    []fakeRule

	// times are the simulation clock values RunH and RunQ step through.
	times    []int64
	hydStep  int
	qualStep int
	// warnStep makes RunH report warning 6 at that step, -1 for none.
	warnStep int
	hydOpen  bool
	qualOpen bool
	closeH   int

	active  atomic.Int32
	overlap atomic.Bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		closed:   map[uintptr]int{},
		deleted:  map[uintptr]int{},
		messages: map[int32]string{},
		patterns: map[string][]float64{},
		times:    []int64{0, 3600, 7200},
		warnStep: -1,
	}
}

func (f *fakeEngine) lock() func() {
	f.mu.Lock()
	f.calls++
	return f.mu.Unlock
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeEngine) releaseCounts(ph uintptr) (closed, deleted int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed[ph], f.deleted[ph]
}

func (f *fakeEngine) CreateProject() (uintptr, int32) {
	defer f.lock()()
	if f.createCode != 0 {
		return 0, f.createCode
	}
	f.handles++
	f.created++
	return f.handles, 0
}

func (f *fakeEngine) DeleteProject(ph uintptr) int32 {
	defer f.lock()()
	f.deleted[ph]++
	return 0
}

func (f *fakeEngine) Init(ph uintptr, rptFile, outFile string, unitsType, headLossType int32) int32 {
	defer f.lock()()
	return f.initCode
}

func (f *fakeEngine) Open(ph uintptr, inpFile, rptFile, outFile string) int32 {
	defer f.lock()()
	return f.openCode
}

func (f *fakeEngine) Close(ph uintptr) int32 {
	defer f.lock()()
	f.closed[ph]++
	return 0
}

func (f *fakeEngine) RunProject(ph uintptr, inpFile, rptFile, outFile string, progress func(string)) int32 {
	defer f.lock()()
	if progress != nil {
		progress("Solving hydraulics")
		progress("Solving quality")
	}
	return f.openCode
}

func (f *fakeEngine) Title(ph uintptr) ([3]string, int32) {
	defer f.lock()()
	return f.title, 0
}

func (f *fakeEngine) SetTitle(ph uintptr, line1, line2, line3 string) int32 {
	defer f.lock()()
	f.title = [3]string{line1, line2, line3}
	return 0
}

func (f *fakeEngine) Count(ph uintptr, object int32) (int32, int32) {
	defer f.lock()()
	switch CountType(object) {
	case NodeCount:
		return int32(len(f.nodes)), 0
	case TankCount:
		n := int32(0)
		for _, nd := range f.nodes {
			if NodeType(nd.typ) != Junction {
				n++
			}
		}
		return n, 0
	case LinkCount:
		return int32(len(f.links)), 0
	case PatternCount:
		return int32(len(f.patOrder)), 0
	case CurveCount:
		return int32(len(f.curves)), 0
	case ControlCount:
		return int32(len(f.controls)), 0
	case RuleCount:
		return int32(len(f.rules)), 0
	}
	return 0, 251
}

func (f *fakeEngine) Version() (int32, int32) {
	return 20300, 0
}

func (f *fakeEngine) ErrorMessage(code int32) (string, int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := f.messages[code]; ok {
		return msg, 0
	}
	return "", 251
}

// Hydraulics

func (f *fakeEngine) OpenH(ph uintptr) int32 {
	defer f.lock()()
	f.hydOpen = true
	return 0
}

func (f *fakeEngine) InitH(ph uintptr, initFlag int32) int32 {
	defer f.lock()()
	if !f.hydOpen {
		return 103
	}
	f.hydStep = 0
	return 0
}

func (f *fakeEngine) RunH(ph uintptr) (int64, int32) {
	defer f.lock()()
	if !f.hydOpen {
		return 0, 103
	}
	if f.hydStep == f.warnStep {
		return f.times[f.hydStep], 6
	}
	return f.times[f.hydStep], 0
}

func (f *fakeEngine) NextH(ph uintptr) (int64, int32) {
	defer f.lock()()
	if f.hydStep+1 >= len(f.times) {
		return 0, 0
	}
	step := f.times[f.hydStep+1] - f.times[f.hydStep]
	f.hydStep++
	return step, 0
}

func (f *fakeEngine) CloseH(ph uintptr) int32 {
	defer f.lock()()
	f.hydOpen = false
	f.closeH++
	return 0
}

func (f *fakeEngine) OpenQ(ph uintptr) int32 {
	defer f.lock()()
	f.qualOpen = true
	return 0
}

func (f *fakeEngine) InitQ(ph uintptr, saveFlag int32) int32 {
	defer f.lock()()
	f.qualStep = 0
	return 0
}

func (f *fakeEngine) RunQ(ph uintptr) (int64, int32) {
	defer f.lock()()
	if !f.qualOpen {
		return 0, 105
	}
	return f.times[f.qualStep], 0
}

func (f *fakeEngine) NextQ(ph uintptr) (int64, int32) {
	defer f.lock()()
	if f.qualStep+1 >= len(f.times) {
		return 0, 0
	}
	step := f.times[f.qualStep+1] - f.times[f.qualStep]
	f.qualStep++
	return step, 0
}

func (f *fakeEngine) CloseQ(ph uintptr) int32 {
	defer f.lock()()
	f.qualOpen = false
	return 0
}

func (f *fakeEngine) TimeToNextEvent(ph uintptr) (int32, int64, int32, int32) {
	defer f.lock()()
	return int32(EventStepTankEvent), 1800, 2, 0
}

// Nodes

func (f *fakeEngine) nodeIndex(id string) int32 {
	for i, n := range f.nodes {
		if n.id == id {
			return int32(i + 1)
		}
	}
	return 0
}

func (f *fakeEngine) node(index int32) *fakeNode {
	if index < 1 || int(index) > len(f.nodes) {
		return nil
	}
	return &f.nodes[index-1]
}

func (f *fakeEngine) AddNode(ph uintptr, id string, nodeType int32) (int32, int32) {
	defer f.lock()()
	if len(id) > MaxIDSize {
		return 0, 252
	}
	if f.nodeIndex(id) != 0 {
		return 0, 215
	}
	f.nodes = append(f.nodes, fakeNode{id: id, typ: nodeType, values: map[int32]float64{}})
	return int32(len(f.nodes)), 0
}

func (f *fakeEngine) DeleteNode(ph uintptr, index, actionCode int32) int32 {
	defer f.lock()()
	if f.node(index) == nil {
		return 203
	}
	f.nodes = append(f.nodes[:index-1], f.nodes[index:]...)
	return 0
}

func (f *fakeEngine) NodeIndex(ph uintptr, id string) (int32, int32) {
	defer f.lock()()
	if idx := f.nodeIndex(id); idx != 0 {
		return idx, 0
	}
	return 0, 203
}

func (f *fakeEngine) NodeID(ph uintptr, index int32) (string, int32) {
	defer f.lock()()
	n := f.node(index)
	if n == nil {
		return "", 203
	}
	return n.id, 0
}

func (f *fakeEngine) SetNodeID(ph uintptr, index int32, id string) int32 {
	defer f.lock()()
	n := f.node(index)
	if n == nil {
		return 203
	}
	if strings.ContainsAny(id, " ;") {
		return 252
	}
	n.id = id
	return 0
}

func (f *fakeEngine) NodeType(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	n := f.node(index)
	if n == nil {
		return 0, 203
	}
	return n.typ, 0
}

func (f *fakeEngine) NodeValue(ph uintptr, index, property int32) (float64, int32) {
	if f.active.Add(1) > 1 {
		f.overlap.Store(true)
	}
	runtime.Gosched()
	defer f.active.Add(-1)

	defer f.lock()()
	n := f.node(index)
	if n == nil {
		return 0, 203
	}
	return n.values[property], 0
}

func (f *fakeEngine) NodeValues(ph uintptr, property, count int32) ([]float64, int32) {
	defer f.lock()()
	out := make([]float64, count)
	for i := range out {
		out[i] = f.nodes[i].values[property]
	}
	return out, 0
}

func (f *fakeEngine) SetNodeValue(ph uintptr, index, property int32, value float64) int32 {
	defer f.lock()()
	n := f.node(index)
	if n == nil {
		return 203
	}
	n.values[property] = value
	return 0
}

// Patterns

func (f *fakeEngine) AddPattern(ph uintptr, id string) int32 {
	defer f.lock()()
	if _, ok := f.patterns[id]; ok {
		return 215
	}
	f.patterns[id] = []float64{1}
	f.patOrder = append(f.patOrder, id)
	return 0
}

func (f *fakeEngine) PatternIndex(ph uintptr, id string) (int32, int32) {
	defer f.lock()()
	for i, p := range f.patOrder {
		if p == id {
			return int32(i + 1), 0
		}
	}
	return 0, 205
}

func (f *fakeEngine) pattern(index int32) []float64 {
	if index < 1 || int(index) > len(f.patOrder) {
		return nil
	}
	return f.patterns[f.patOrder[index-1]]
}

func (f *fakeEngine) PatternLen(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	p := f.pattern(index)
	if p == nil {
		return 0, 205
	}
	return int32(len(p)), 0
}

func (f *fakeEngine) PatternValue(ph uintptr, index, period int32) (float64, int32) {
	defer f.lock()()
	p := f.pattern(index)
	if p == nil {
		return 0, 205
	}
	if period < 1 || int(period) > len(p) {
		return 0, 251
	}
	return p[period-1], 0
}

func (f *fakeEngine) SetPattern(ph uintptr, index int32, values []float64) int32 {
	defer f.lock()()
	if f.pattern(index) == nil {
		return 205
	}
	f.patterns[f.patOrder[index-1]] = append([]float64(nil), values...)
	return 0
}

func (f *fakeEngine) LoadPatternFile(ph uintptr, filename, id string) int32 {
	defer f.lock()()
	if f.v22 {
		return ffi.CodeUnavailable
	}
	return 0
}

// Curves

func (f *fakeEngine) curve(index int32) *fakeCurve {
	if index < 1 || int(index) > len(f.curves) {
		return nil
	}
	return &f.curves[index-1]
}

func (f *fakeEngine) AddCurve(ph uintptr, id string) int32 {
	defer f.lock()()
	f.curves = append(f.curves, fakeCurve{id: id, typ: int32(GenericCurve), x: []float64{1}, y: []float64{1}})
	return 0
}

func (f *fakeEngine) DeleteCurve(ph uintptr, index int32) int32 {
	defer f.lock()()
	if f.curve(index) == nil {
		return 206
	}
	f.curves = append(f.curves[:index-1], f.curves[index:]...)
	return 0
}

func (f *fakeEngine) CurveIndex(ph uintptr, id string) (int32, int32) {
	defer f.lock()()
	for i, c := range f.curves {
		if c.id == id {
			return int32(i + 1), 0
		}
	}
	return 0, 206
}

func (f *fakeEngine) SetCurveID(ph uintptr, index int32, id string) int32 {
	defer f.lock()()
	c := f.curve(index)
	if c == nil {
		return 206
	}
	c.id = id
	return 0
}

func (f *fakeEngine) CurveType(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	c := f.curve(index)
	if c == nil {
		return 0, 206
	}
	return c.typ, 0
}

func (f *fakeEngine) SetCurveType(ph uintptr, index, curveType int32) int32 {
	defer f.lock()()
	if f.v22 {
		return ffi.CodeUnavailable
	}
	c := f.curve(index)
	if c == nil {
		return 206
	}
	c.typ = curveType
	return 0
}

func (f *fakeEngine) Curve(ph uintptr, index int32) (string, []float64, []float64, int32) {
	defer f.lock()()
	c := f.curve(index)
	if c == nil {
		return "", nil, nil, 206
	}
	return c.id, append([]float64(nil), c.x...), append([]float64(nil), c.y...), 0
}

func (f *fakeEngine) SetCurve(ph uintptr, index int32, x, y []float64) int32 {
	defer f.lock()()
	c := f.curve(index)
	if c == nil {
		return 206
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return 230
		}
	}
	c.x, c.y = append([]float64(nil), x...), append([]float64(nil), y...)
	return 0
}

// Controls

func (f *fakeEngine) control(index int32) *fakeControl {
	if index < 1 || int(index) > len(f.controls) {
		return nil
	}
	return &f.controls[index-1]
}

func (f *fakeEngine) AddControl(ph uintptr, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) (int32, int32) {
	defer f.lock()()
	f.controls = append(f.controls, fakeControl{
		typ: controlType, link: linkIndex, setting: setting, node: nodeIndex, level: level, enabled: 1,
	})
	return int32(len(f.controls)), 0
}

func (f *fakeEngine) DeleteControl(ph uintptr, index int32) int32 {
	defer f.lock()()
	if f.control(index) == nil {
		return 241
	}
	f.controls = append(f.controls[:index-1], f.controls[index:]...)
	return 0
}

func (f *fakeEngine) Control(ph uintptr, index int32) (int32, int32, float64, int32, float64, int32) {
	defer f.lock()()
	c := f.control(index)
	if c == nil {
		return 0, 0, 0, 0, 0, 241
	}
	return c.typ, c.link, c.setting, c.node, c.level, 0
}

func (f *fakeEngine) SetControl(ph uintptr, index, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) int32 {
	defer f.lock()()
	c := f.control(index)
	if c == nil {
		return 241
	}
	c.typ, c.link, c.setting, c.node, c.level = controlType, linkIndex, setting, nodeIndex, level
	return 0
}

func (f *fakeEngine) ControlEnabled(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	if f.v22 {
		return 0, ffi.CodeUnavailable
	}
	c := f.control(index)
	if c == nil {
		return 0, 241
	}
	return c.enabled, 0
}

func (f *fakeEngine) SetControlEnabled(ph uintptr, index, enabled int32) int32 {
	defer f.lock()()
	if f.v22 {
		return ffi.CodeUnavailable
	}
	c := f.control(index)
	if c == nil {
		return 241
	}
	c.enabled = enabled
	return 0
}

// Rules

func (f *fakeEngine) rule(index int32) *fakeRule {
	if index < 1 || int(index) > len(f.rules) {
		return nil
	}
	return &f.rules[index-1]
}

// AddRule understands just enough of the rule syntax to record the rule ID;
// every rule gets one premise and one THEN action.
func (f *fakeEngine) AddRule(ph uintptr, rule string) int32 {
	defer f.lock()()
	fields := strings.Fields(rule)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "RULE") {
		return 201
	}
	f.rules = append(f.rules, fakeRule{
		id: fields[1],
		premises: []ffi.PremiseC{{
			LogOp: int32(LogicIf), Object: int32(RuleNode), ObjIndex: 1,
			Variable: int32(VarLevel), RelOp: int32(OpAbove), Value: 20,
		}},
		then:    []fakeAction{{link: 1, status: int32(StatusIsClosed)}},
		enabled: 1,
	})
	return 0
}

func (f *fakeEngine) DeleteRule(ph uintptr, index int32) int32 {
	defer f.lock()()
	if f.rule(index) == nil {
		return 257
	}
	f.rules = append(f.rules[:index-1], f.rules[index:]...)
	return 0
}

func (f *fakeEngine) Rule(ph uintptr, index int32) (int32, int32, int32, float64, int32) {
	defer f.lock()()
	r := f.rule(index)
	if r == nil {
		return 0, 0, 0, 0, 257
	}
	return int32(len(r.premises)), int32(len(r.then)), int32(len(r.els)), r.priority, 0
}

func (f *fakeEngine) RuleID(ph uintptr, index int32) (string, int32) {
	defer f.lock()()
	r := f.rule(index)
	if r == nil {
		return "", 257
	}
	return r.id, 0
}

func (f *fakeEngine) Premise(ph uintptr, ruleIndex, premiseIndex int32) (ffi.PremiseC, int32) {
	defer f.lock()()
	r := f.rule(ruleIndex)
	if r == nil {
		return ffi.PremiseC{}, 257
	}
	if premiseIndex < 1 || int(premiseIndex) > len(r.premises) {
		return ffi.PremiseC{}, 258
	}
	return r.premises[premiseIndex-1], 0
}

func (f *fakeEngine) SetPremise(ph uintptr, ruleIndex, premiseIndex int32, p ffi.PremiseC) int32 {
	defer f.lock()()
	r := f.rule(ruleIndex)
	if r == nil {
		return 257
	}
	if premiseIndex < 1 || int(premiseIndex) > len(r.premises) {
		return 258
	}
	r.premises[premiseIndex-1] = p
	return 0
}

func (f *fakeEngine) ThenAction(ph uintptr, ruleIndex, actionIndex int32) (int32, int32, float64, int32) {
	defer f.lock()()
	r := f.rule(ruleIndex)
	if r == nil {
		return 0, 0, 0, 257
	}
	if actionIndex < 1 || int(actionIndex) > len(r.then) {
		return 0, 0, 0, 258
	}
	a := r.then[actionIndex-1]
	return a.link, a.status, a.setting, 0
}

func (f *fakeEngine) ElseAction(ph uintptr, ruleIndex, actionIndex int32) (int32, int32, float64, int32) {
	defer f.lock()()
	r := f.rule(ruleIndex)
	if r == nil {
		return 0, 0, 0, 257
	}
	if actionIndex < 1 || int(actionIndex) > len(r.els) {
		return 0, 0, 0, 258
	}
	a := r.els[actionIndex-1]
	return a.link, a.status, a.setting, 0
}

func (f *fakeEngine) SetRulePriority(ph uintptr, index int32, priority float64) int32 {
	defer f.lock()()
	r := f.rule(index)
	if r == nil {
		return 257
	}
	r.priority = priority
	return 0
}

func (f *fakeEngine) RuleEnabled(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	if f.v22 {
		return 0, ffi.CodeUnavailable
	}
	r := f.rule(index)
	if r == nil {
		return 0, 257
	}
	return r.enabled, 0
}

func (f *fakeEngine) SetRuleEnabled(ph uintptr, index, enabled int32) int32 {
	defer f.lock()()
	if f.v22 {
		return ffi.CodeUnavailable
	}
	r := f.rule(index)
	if r == nil {
		return 257
	}
	r.enabled = enabled
	return 0
}

// Links

func (f *fakeEngine) link(index int32) *fakeLink {
	if index < 1 || int(index) > len(f.links) {
		return nil
	}
	return &f.links[index-1]
}

func (f *fakeEngine) AddLink(ph uintptr, id string, linkType int32, fromNode, toNode string) (int32, int32) {
	defer f.lock()()
	for _, l := range f.links {
		if l.id == id {
			return 0, 215
		}
	}
	from, to := f.nodeIndex(fromNode), f.nodeIndex(toNode)
	if from == 0 || to == 0 {
		return 0, 203
	}
	if from == to {
		return 0, 222
	}
	f.links = append(f.links, fakeLink{id: id, typ: linkType, from: from, to: to, values: map[int32]float64{}})
	return int32(len(f.links)), 0
}

func (f *fakeEngine) DeleteLink(ph uintptr, index, actionCode int32) int32 {
	defer f.lock()()
	if f.link(index) == nil {
		return 204
	}
	f.links = append(f.links[:index-1], f.links[index:]...)
	return 0
}

func (f *fakeEngine) LinkIndex(ph uintptr, id string) (int32, int32) {
	defer f.lock()()
	for i, l := range f.links {
		if l.id == id {
			return int32(i + 1), 0
		}
	}
	return 0, 204
}

func (f *fakeEngine) LinkID(ph uintptr, index int32) (string, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return "", 204
	}
	return l.id, 0
}

func (f *fakeEngine) LinkType(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 0, 204
	}
	return l.typ, 0
}

// SetLinkType re-creates the link at the end of the list, as the toolkit does.
func (f *fakeEngine) SetLinkType(ph uintptr, index, linkType, actionCode int32) (int32, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 0, 204
	}
	moved := *l
	moved.typ = linkType
	f.links = append(f.links[:index-1], f.links[index:]...)
	f.links = append(f.links, moved)
	return int32(len(f.links)), 0
}

func (f *fakeEngine) LinkNodes(ph uintptr, index int32) (int32, int32, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 0, 0, 204
	}
	return l.from, l.to, 0
}

func (f *fakeEngine) LinkValue(ph uintptr, index, property int32) (float64, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 0, 204
	}
	return l.values[property], 0
}

func (f *fakeEngine) LinkValues(ph uintptr, property, count int32) ([]float64, int32) {
	defer f.lock()()
	if int(count) != len(f.links) {
		return nil, 251
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = f.links[i].values[property]
	}
	return out, 0
}

func (f *fakeEngine) SetLinkValue(ph uintptr, index, property int32, value float64) int32 {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 204
	}
	l.values[property] = value
	return 0
}

func (f *fakeEngine) SetPipeData(ph uintptr, index int32, length, diam, rough, mloss float64) int32 {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 204
	}
	if length <= 0 || diam <= 0 || rough <= 0 || mloss < 0 {
		return 211
	}
	l.values[int32(LinkLength)] = length
	l.values[int32(LinkDiameter)] = diam
	l.values[int32(LinkRoughness)] = rough
	l.values[int32(LinkMinorLoss)] = mloss
	return 0
}

func (f *fakeEngine) VertexCount(ph uintptr, index int32) (int32, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 0, 204
	}
	return int32(len(l.vx)), 0
}

func (f *fakeEngine) Vertex(ph uintptr, index, vertex int32) (float64, float64, int32) {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 0, 0, 204
	}
	if vertex < 1 || int(vertex) > len(l.vx) {
		return 0, 0, 255
	}
	return l.vx[vertex-1], l.vy[vertex-1], 0
}

func (f *fakeEngine) SetVertices(ph uintptr, index int32, x, y []float64) int32 {
	defer f.lock()()
	l := f.link(index)
	if l == nil {
		return 204
	}
	l.vx, l.vy = append([]float64(nil), x...), append([]float64(nil), y...)
	return 0
}

// Demands

func (f *fakeEngine) demand(nodeIndex, demandIndex int32) (*fakeDemand, int32) {
	n := f.node(nodeIndex)
	if n == nil {
		return nil, 203
	}
	if demandIndex < 1 || int(demandIndex) > len(n.demands) {
		return nil, 253
	}
	return &n.demands[demandIndex-1], 0
}

func (f *fakeEngine) AddDemand(ph uintptr, nodeIndex int32, baseDemand float64, pattern, name string) int32 {
	defer f.lock()()
	n := f.node(nodeIndex)
	if n == nil {
		return 203
	}
	var pat int32
	if pattern != "" {
		for i, id := range f.patOrder {
			if id == pattern {
				pat = int32(i + 1)
			}
		}
		if pat == 0 {
			return 205
		}
	}
	n.demands = append(n.demands, fakeDemand{base: baseDemand, pattern: pat, name: name})
	return 0
}

func (f *fakeEngine) DeleteDemand(ph uintptr, nodeIndex, demandIndex int32) int32 {
	defer f.lock()()
	if _, code := f.demand(nodeIndex, demandIndex); code != 0 {
		return code
	}
	n := f.node(nodeIndex)
	n.demands = append(n.demands[:demandIndex-1], n.demands[demandIndex:]...)
	return 0
}

func (f *fakeEngine) DemandIndex(ph uintptr, nodeIndex int32, name string) (int32, int32) {
	defer f.lock()()
	n := f.node(nodeIndex)
	if n == nil {
		return 0, 203
	}
	for i, d := range n.demands {
		if d.name == name {
			return int32(i + 1), 0
		}
	}
	return 0, 253
}

func (f *fakeEngine) DemandCount(ph uintptr, nodeIndex int32) (int32, int32) {
	defer f.lock()()
	n := f.node(nodeIndex)
	if n == nil {
		return 0, 203
	}
	return int32(len(n.demands)), 0
}

func (f *fakeEngine) BaseDemand(ph uintptr, nodeIndex, demandIndex int32) (float64, int32) {
	defer f.lock()()
	d, code := f.demand(nodeIndex, demandIndex)
	if code != 0 {
		return 0, code
	}
	return d.base, 0
}

func (f *fakeEngine) SetBaseDemand(ph uintptr, nodeIndex, demandIndex int32, value float64) int32 {
	defer f.lock()()
	d, code := f.demand(nodeIndex, demandIndex)
	if code != 0 {
		return code
	}
	d.base = value
	return 0
}

func (f *fakeEngine) DemandPattern(ph uintptr, nodeIndex, demandIndex int32) (int32, int32) {
	defer f.lock()()
	d, code := f.demand(nodeIndex, demandIndex)
	if code != 0 {
		return 0, code
	}
	return d.pattern, 0
}

func (f *fakeEngine) SetDemandPattern(ph uintptr, nodeIndex, demandIndex, pattern int32) int32 {
	defer f.lock()()
	d, code := f.demand(nodeIndex, demandIndex)
	if code != 0 {
		return code
	}
	if pattern < 0 || int(pattern) > len(f.patOrder) {
		return 205
	}
	d.pattern = pattern
	return 0
}

func (f *fakeEngine) DemandName(ph uintptr, nodeIndex, demandIndex int32) (string, int32) {
	defer f.lock()()
	d, code := f.demand(nodeIndex, demandIndex)
	if code != 0 {
		return "", code
	}
	return d.name, 0
}

func (f *fakeEngine) SetDemandName(ph uintptr, nodeIndex, demandIndex int32, name string) int32 {
	defer f.lock()()
	d, code := f.demand(nodeIndex, demandIndex)
	if code != 0 {
		return code
	}
	d.name = name
	return 0
}
