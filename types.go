package epanet

import "github.com/agiangrant/epanet/internal/ffi"

// Toolkit size limits
const (
	MaxIDSize    = ffi.MaxIDSize
	MaxMsgSize   = ffi.MaxMsgSize
	MaxTitleSize = ffi.MaxTitleSize
)

// ============================================================================
// Network Objects
// ============================================================================

// ObjectType identifies a class of network object.
type ObjectType int32

const (
	ObjectNode        ObjectType = 0
	ObjectLink        ObjectType = 1
	ObjectTimePattern ObjectType = 2
	ObjectCurve       ObjectType = 3
	ObjectControl     ObjectType = 4
	ObjectRule        ObjectType = 5
)

// CountType selects what Count counts.
type CountType int32

const (
	NodeCount    CountType = 0 // junctions + tanks + reservoirs
	TankCount    CountType = 1 // tanks and reservoirs
	LinkCount    CountType = 2 // pipes + pumps + valves
	PatternCount CountType = 3
	CurveCount   CountType = 4
	ControlCount CountType = 5
	RuleCount    CountType = 6
)

func (c CountType) String() string {
	switch c {
	case NodeCount:
		return "nodes"
	case TankCount:
		return "tanks"
	case LinkCount:
		return "links"
	case PatternCount:
		return "patterns"
	case CurveCount:
		return "curves"
	case ControlCount:
		return "controls"
	case RuleCount:
		return "rules"
	default:
		return "unknown"
	}
}

// ActionCode decides what happens to dependent objects on deletion.
type ActionCode int32

const (
	// Unconditional deletes the object and everything that references it.
	Unconditional ActionCode = 0
	// Conditional refuses to delete an object that is still referenced.
	Conditional ActionCode = 1
)

// ============================================================================
// Nodes
// ============================================================================

type NodeType int32

const (
	Junction  NodeType = 0
	Reservoir NodeType = 1
	Tank      NodeType = 2
)

func (t NodeType) String() string {
	switch t {
	case Junction:
		return "junction"
	case Reservoir:
		return "reservoir"
	case Tank:
		return "tank"
	default:
		return "unknown"
	}
}

// NodeProperty selects a node value for NodeValue/SetNodeValue.
// Properties marked read only are computed by the solvers.
type NodeProperty int32

const (
	NodeElevation     NodeProperty = 0
	NodeBaseDemand    NodeProperty = 1
	NodePattern       NodeProperty = 2
	NodeEmitter       NodeProperty = 3
	NodeInitQual      NodeProperty = 4
	NodeSourceQual    NodeProperty = 5
	NodeSourcePat     NodeProperty = 6
	NodeSourceType    NodeProperty = 7
	NodeTankLevel     NodeProperty = 8
	NodeDemand        NodeProperty = 9  // read only
	NodeHead          NodeProperty = 10 // read only
	NodePressure      NodeProperty = 11 // read only
	NodeQuality       NodeProperty = 12 // read only
	NodeSourceMass    NodeProperty = 13 // read only
	NodeInitVolume    NodeProperty = 14 // read only
	NodeMixModel      NodeProperty = 15
	NodeMixZoneVol    NodeProperty = 16 // read only
	NodeTankDiam      NodeProperty = 17
	NodeMinVolume     NodeProperty = 18
	NodeVolCurve      NodeProperty = 19
	NodeMinLevel      NodeProperty = 20
	NodeMaxLevel      NodeProperty = 21
	NodeMixFraction   NodeProperty = 22
	NodeTankKBulk     NodeProperty = 23
	NodeTankVolume    NodeProperty = 24 // read only
	NodeMaxVolume     NodeProperty = 25 // read only
	NodeCanOverflow   NodeProperty = 26
	NodeDemandDeficit NodeProperty = 27 // read only
	NodeInControl     NodeProperty = 28
	NodeEmitterFlow   NodeProperty = 29 // read only
	NodeLeakageFlow   NodeProperty = 30 // read only
	NodeDemandFlow    NodeProperty = 31 // read only
	NodeFullDemand    NodeProperty = 32 // read only
)

type SourceType int32

const (
	SourceConcen    SourceType = 0
	SourceMass      SourceType = 1
	SourceSetpoint  SourceType = 2
	SourceFlowPaced SourceType = 3
)

type MixingModel int32

const (
	Mix1 MixingModel = 0 // complete mix
	Mix2 MixingModel = 1 // two-compartment
	FIFO MixingModel = 2
	LIFO MixingModel = 3
)

// ============================================================================
// Links
// ============================================================================

type LinkType int32

const (
	CVPipe LinkType = 0 // pipe with check valve
	Pipe   LinkType = 1
	Pump   LinkType = 2
	PRV    LinkType = 3 // pressure reducing valve
	PSV    LinkType = 4 // pressure sustaining valve
	PBV    LinkType = 5 // pressure breaker valve
	FCV    LinkType = 6 // flow control valve
	TCV    LinkType = 7 // throttle control valve
	GPV    LinkType = 8 // general purpose valve
	PCV    LinkType = 9 // positional control valve
)

func (t LinkType) String() string {
	switch t {
	case CVPipe:
		return "cvpipe"
	case Pipe:
		return "pipe"
	case Pump:
		return "pump"
	case PRV:
		return "prv"
	case PSV:
		return "psv"
	case PBV:
		return "pbv"
	case FCV:
		return "fcv"
	case TCV:
		return "tcv"
	case GPV:
		return "gpv"
	case PCV:
		return "pcv"
	default:
		return "unknown"
	}
}

// IsValve reports whether the link type is one of the valve types.
func (t LinkType) IsValve() bool {
	return t >= PRV && t <= PCV
}

// LinkProperty selects a link value for LinkValue/SetLinkValue.
type LinkProperty int32

const (
	LinkDiameter    LinkProperty = 0
	LinkLength      LinkProperty = 1
	LinkRoughness   LinkProperty = 2
	LinkMinorLoss   LinkProperty = 3
	LinkInitStatus  LinkProperty = 4
	LinkInitSetting LinkProperty = 5
	LinkKBulk       LinkProperty = 6
	LinkKWall       LinkProperty = 7
	LinkFlow        LinkProperty = 8  // read only
	LinkVelocity    LinkProperty = 9  // read only
	LinkHeadLoss    LinkProperty = 10 // read only
	LinkStatus      LinkProperty = 11
	LinkSetting     LinkProperty = 12
	LinkEnergy      LinkProperty = 13 // read only
	LinkQual        LinkProperty = 14 // read only
	LinkPattern     LinkProperty = 15
	LinkPumpState   LinkProperty = 16 // read only
	LinkPumpEffic   LinkProperty = 17 // read only
	LinkPumpPower   LinkProperty = 18
	LinkPumpHCurve  LinkProperty = 19
	LinkPumpECurve  LinkProperty = 20
	LinkPumpECost   LinkProperty = 21
	LinkPumpEPat    LinkProperty = 22
	LinkInControl   LinkProperty = 23
	LinkGPVCurve    LinkProperty = 24
	LinkPCVCurve    LinkProperty = 25
	LinkLeakArea    LinkProperty = 26
	LinkLeakExpan   LinkProperty = 27
	LinkLeakage     LinkProperty = 28 // read only
)

type LinkStatusType int32

const (
	LinkClosed LinkStatusType = 0
	LinkOpen   LinkStatusType = 1
)

type PumpStateType int32

const (
	PumpXHead  PumpStateType = 0 // closed, cannot supply head
	PumpClosed PumpStateType = 2
	PumpOpen   PumpStateType = 3
	PumpXFlow  PumpStateType = 5 // open, cannot supply flow
)

type PumpType int32

const (
	PumpConstHP   PumpType = 0
	PumpPowerFunc PumpType = 1
	PumpCustom    PumpType = 2
	PumpNoCurve   PumpType = 3
)

// ============================================================================
// Curves and Controls
// ============================================================================

type CurveType int32

const (
	VolumeCurve  CurveType = 0 // tank volume v. depth
	PumpCurve    CurveType = 1 // pump head v. flow
	EfficCurve   CurveType = 2 // pump efficiency v. flow
	HLossCurve   CurveType = 3 // valve head loss v. flow
	GenericCurve CurveType = 4
	ValveCurve   CurveType = 5 // valve loss coefficient v. fraction open
)

type ControlType int32

const (
	LowLevel  ControlType = 0 // act when pressure or level drops below a setpoint
	HiLevel   ControlType = 1 // act when pressure or level rises above a setpoint
	Timer     ControlType = 2 // act after an elapsed amount of time
	TimeOfDay ControlType = 3 // act at a clock time
)

func (t ControlType) String() string {
	switch t {
	case LowLevel:
		return "low-level"
	case HiLevel:
		return "hi-level"
	case Timer:
		return "timer"
	case TimeOfDay:
		return "time-of-day"
	default:
		return "unknown"
	}
}

type RuleObject int32

const (
	RuleNode   RuleObject = 6
	RuleLink   RuleObject = 7
	RuleSystem RuleObject = 8
)

type RuleVariable int32

const (
	VarDemand    RuleVariable = 0
	VarHead      RuleVariable = 1
	VarGrade     RuleVariable = 2
	VarLevel     RuleVariable = 3
	VarPressure  RuleVariable = 4
	VarFlow      RuleVariable = 5
	VarStatus    RuleVariable = 6
	VarSetting   RuleVariable = 7
	VarPower     RuleVariable = 8
	VarTime      RuleVariable = 9
	VarClockTime RuleVariable = 10
	VarFillTime  RuleVariable = 11
	VarDrainTime RuleVariable = 12
)

type RuleOperator int32

const (
	OpEq    RuleOperator = 0
	OpNe    RuleOperator = 1
	OpLe    RuleOperator = 2
	OpGe    RuleOperator = 3
	OpLt    RuleOperator = 4
	OpGt    RuleOperator = 5
	OpIs    RuleOperator = 6
	OpNot   RuleOperator = 7
	OpBelow RuleOperator = 8
	OpAbove RuleOperator = 9
)

// RuleStatus is a link status named in a rule clause. Zero means none.
type RuleStatus int32

const (
	StatusNone     RuleStatus = 0
	StatusIsOpen   RuleStatus = 1
	StatusIsClosed RuleStatus = 2
	StatusIsActive RuleStatus = 3
)

type LogicalOperator int32

const (
	LogicIf  LogicalOperator = 1
	LogicAnd LogicalOperator = 2
	LogicOr  LogicalOperator = 3
)

// ============================================================================
// Analysis Options
// ============================================================================

type FlowUnits int32

const (
	CFS  FlowUnits = 0  // cubic feet per second
	GPM  FlowUnits = 1  // gallons per minute
	MGD  FlowUnits = 2  // million gallons per day
	IMGD FlowUnits = 3  // imperial MGD
	AFD  FlowUnits = 4  // acre-feet per day
	LPS  FlowUnits = 5  // liters per second
	LPM  FlowUnits = 6  // liters per minute
	MLD  FlowUnits = 7  // million liters per day
	CMH  FlowUnits = 8  // cubic meters per hour
	CMD  FlowUnits = 9  // cubic meters per day
	CMS  FlowUnits = 10 // cubic meters per second
)

func (u FlowUnits) String() string {
	switch u {
	case CFS:
		return "CFS"
	case GPM:
		return "GPM"
	case MGD:
		return "MGD"
	case IMGD:
		return "IMGD"
	case AFD:
		return "AFD"
	case LPS:
		return "LPS"
	case LPM:
		return "LPM"
	case MLD:
		return "MLD"
	case CMH:
		return "CMH"
	case CMD:
		return "CMD"
	case CMS:
		return "CMS"
	default:
		return "unknown"
	}
}

// Metric reports whether the flow units imply SI units for everything else.
func (u FlowUnits) Metric() bool {
	return u >= LPS
}

type HeadLossType int32

const (
	HazenWilliams HeadLossType = 0
	DarcyWeisbach HeadLossType = 1
	ChezyManning  HeadLossType = 2
)

func (h HeadLossType) String() string {
	switch h {
	case HazenWilliams:
		return "H-W"
	case DarcyWeisbach:
		return "D-W"
	case ChezyManning:
		return "C-M"
	default:
		return "unknown"
	}
}

type PressUnits int32

const (
	PSI    PressUnits = 0
	KPA    PressUnits = 1
	Meters PressUnits = 2
)

type DemandModel int32

const (
	DDA DemandModel = 0 // demand driven analysis
	PDA DemandModel = 1 // pressure driven analysis
)

type QualityType int32

const (
	QualityNone  QualityType = 0
	QualityChem  QualityType = 1
	QualityAge   QualityType = 2
	QualityTrace QualityType = 3
)

func (q QualityType) String() string {
	switch q {
	case QualityNone:
		return "none"
	case QualityChem:
		return "chemical"
	case QualityAge:
		return "age"
	case QualityTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// AnalysisOption selects a value for Option/SetOption.
type AnalysisOption int32

const (
	OptTrials        AnalysisOption = 0
	OptAccuracy      AnalysisOption = 1
	OptTolerance     AnalysisOption = 2
	OptEmitExpon     AnalysisOption = 3
	OptDemandMult    AnalysisOption = 4
	OptHeadError     AnalysisOption = 5
	OptFlowChange    AnalysisOption = 6
	OptHeadLossForm  AnalysisOption = 7
	OptGlobalEffic   AnalysisOption = 8
	OptGlobalPrice   AnalysisOption = 9
	OptGlobalPattern AnalysisOption = 10
	OptDemandCharge  AnalysisOption = 11
	OptSpGravity     AnalysisOption = 12
	OptSpViscos      AnalysisOption = 13
	OptUnbalanced    AnalysisOption = 14
	OptCheckFreq     AnalysisOption = 15
	OptMaxCheck      AnalysisOption = 16
	OptDampLimit     AnalysisOption = 17
	OptSpDiffus      AnalysisOption = 18
	OptBulkOrder     AnalysisOption = 19
	OptWallOrder     AnalysisOption = 20
	OptTankOrder     AnalysisOption = 21
	OptConcenLimit   AnalysisOption = 22
	OptDemandPattern AnalysisOption = 23
	OptEmitBackflow  AnalysisOption = 24
	OptPressUnits    AnalysisOption = 25
	OptStatusReport  AnalysisOption = 26
)

// TimeParameter selects a value for TimeParam/SetTimeParam. Durations are
// expressed in seconds.
type TimeParameter int32

const (
	TimeDuration      TimeParameter = 0
	TimeHydStep       TimeParameter = 1
	TimeQualStep      TimeParameter = 2
	TimePatternStep   TimeParameter = 3
	TimePatternStart  TimeParameter = 4
	TimeReportStep    TimeParameter = 5
	TimeReportStart   TimeParameter = 6
	TimeRuleStep      TimeParameter = 7
	TimeStatistic     TimeParameter = 8
	TimePeriods       TimeParameter = 9  // read only
	TimeStartTime     TimeParameter = 10
	TimeHTime         TimeParameter = 11 // read only
	TimeQTime         TimeParameter = 12 // read only
	TimeHaltFlag      TimeParameter = 13 // read only
	TimeNextEvent     TimeParameter = 14 // read only
	TimeNextEventTank TimeParameter = 15 // read only
)

type StatisticType int32

const (
	StatisticSeries  StatisticType = 0
	StatisticAverage StatisticType = 1
	StatisticMinimum StatisticType = 2
	StatisticMaximum StatisticType = 3
	StatisticRange   StatisticType = 4
)

type StatusReport int32

const (
	NoReport     StatusReport = 0
	NormalReport StatusReport = 1
	FullReport   StatusReport = 2
)

// ============================================================================
// Analysis
// ============================================================================

// InitHydOption controls hydraulic file saving and flow re-initialization.
type InitHydOption int32

const (
	NoSave      InitHydOption = 0  // don't save hydraulics; don't re-initialize flows
	Save        InitHydOption = 1  // save hydraulics to file; don't re-initialize flows
	InitFlow    InitHydOption = 10 // don't save hydraulics; re-initialize flows
	SaveAndInit InitHydOption = 11 // save hydraulics; re-initialize flows
)

type AnalysisStatistic int32

const (
	StatIterations      AnalysisStatistic = 0
	StatRelativeError   AnalysisStatistic = 1
	StatMaxHeadError    AnalysisStatistic = 2
	StatMaxFlowChange   AnalysisStatistic = 3
	StatMassBalance     AnalysisStatistic = 4
	StatDeficientNodes  AnalysisStatistic = 5
	StatDemandReduction AnalysisStatistic = 6
	StatLeakageLoss     AnalysisStatistic = 7
)

type TimestepEvent int32

const (
	EventStepReport       TimestepEvent = 0
	EventStepHyd          TimestepEvent = 1
	EventStepWQ           TimestepEvent = 2
	EventStepTankEvent    TimestepEvent = 3
	EventStepControlEvent TimestepEvent = 4
)

func (e TimestepEvent) String() string {
	switch e {
	case EventStepReport:
		return "report"
	case EventStepHyd:
		return "hydraulic"
	case EventStepWQ:
		return "quality"
	case EventStepTankEvent:
		return "tank"
	case EventStepControlEvent:
		return "control"
	default:
		return "unknown"
	}
}
