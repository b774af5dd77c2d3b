// Package ffi provides Go bindings to the EPANET toolkit library via purego.
// This implementation uses purego for FFI, eliminating the need for CGo.
// The shared library (libepanet2) is located and loaded at run time.
package ffi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/caarlos0/env/v11"
	"github.com/ebitengine/purego"
)

// ============================================================================
// Library Loading
// ============================================================================

// ErrNotLoaded is returned by Load callers that race a failed load.
var ErrNotLoaded = errors.New("epanet library not loaded")

var (
	libHandle   uintptr
	libOnce     sync.Once
	libErr      error
	libPath     string
	initialized bool

	pathOverride string
)

// libraryEnv holds the environment knobs read before loading.
type libraryEnv struct {
	Path string `env:"EPANET_LIB_PATH"`
}

// Library function pointers (populated by initLibrary)
var (
	// Project functions
	fnCreateProject func(ph *uintptr) int32
	fnDeleteProject func(ph uintptr) int32
	fnInit          func(ph uintptr, rptFile, outFile *byte, unitsType, headLossType int32) int32
	fnOpen          func(ph uintptr, inpFile, rptFile, outFile *byte) int32
	fnClose         func(ph uintptr) int32
	fnRunProject    func(ph uintptr, inpFile, rptFile, outFile *byte, progress uintptr) int32
	fnSaveInpFile   func(ph uintptr, filename *byte) int32
	fnGetTitle      func(ph uintptr, line1, line2, line3 *byte) int32
	fnSetTitle      func(ph uintptr, line1, line2, line3 *byte) int32
	fnGetComment    func(ph uintptr, object, index int32, out *byte) int32
	fnSetComment    func(ph uintptr, object, index int32, comment *byte) int32
	fnGetCount      func(ph uintptr, object int32, count *int32) int32
	fnGetVersion    func(version *int32) int32
	fnGetError      func(code int32, out *byte, maxLen int32) int32

	// Hydraulic analysis functions
	fnSolveH       func(ph uintptr) int32
	fnOpenH        func(ph uintptr) int32
	fnInitH        func(ph uintptr, initFlag int32) int32
	fnRunH         func(ph uintptr, currentTime *cLong) int32
	fnNextH        func(ph uintptr, tStep *cLong) int32
	fnSaveH        func(ph uintptr) int32
	fnSaveHydFile  func(ph uintptr, filename *byte) int32
	fnUseHydFile   func(ph uintptr, filename *byte) int32
	fnCloseH       func(ph uintptr) int32

	// Water quality analysis functions
	fnSolveQ func(ph uintptr) int32
	fnOpenQ  func(ph uintptr) int32
	fnInitQ  func(ph uintptr, saveFlag int32) int32
	fnRunQ   func(ph uintptr, currentTime *cLong) int32
	fnNextQ  func(ph uintptr, tStep *cLong) int32
	fnStepQ  func(ph uintptr, timeLeft *cLong) int32
	fnCloseQ func(ph uintptr) int32

	// Reporting functions
	fnWriteLine       func(ph uintptr, line *byte) int32
	fnReport          func(ph uintptr) int32
	fnCopyReport      func(ph uintptr, filename *byte) int32
	fnClearReport     func(ph uintptr) int32
	fnResetReport     func(ph uintptr) int32
	fnSetReport       func(ph uintptr, format *byte) int32
	fnSetStatusReport func(ph uintptr, level int32) int32
	fnGetStatistic    func(ph uintptr, statType int32, value *float64) int32
	fnGetResultIndex  func(ph uintptr, resultType, index int32, value *int32) int32
	fnTimeToNextEvent func(ph uintptr, eventType *int32, duration *cLong, elementIndex *int32) int32

	// Analysis option functions
	fnGetOption     func(ph uintptr, option int32, value *float64) int32
	fnSetOption     func(ph uintptr, option int32, value float64) int32
	fnGetFlowUnits  func(ph uintptr, units *int32) int32
	fnSetFlowUnits  func(ph uintptr, units int32) int32
	fnGetTimeParam  func(ph uintptr, param int32, value *cLong) int32
	fnSetTimeParam  func(ph uintptr, param int32, value cLong) int32
	fnGetQualInfo   func(ph uintptr, qualType *int32, chemName, chemUnits *byte, traceNode *int32) int32
	fnGetQualType   func(ph uintptr, qualType, traceNode *int32) int32
	fnSetQualType   func(ph uintptr, qualType int32, chemName, chemUnits, traceNode *byte) int32
	fnGetDemandModel func(ph uintptr, modelType *int32, pmin, preq, pexp *float64) int32
	fnSetDemandModel func(ph uintptr, modelType int32, pmin, preq, pexp float64) int32

	// Node functions
	fnAddNode       func(ph uintptr, id *byte, nodeType int32, index *int32) int32
	fnDeleteNode    func(ph uintptr, index, actionCode int32) int32
	fnGetNodeIndex  func(ph uintptr, id *byte, index *int32) int32
	fnGetNodeID     func(ph uintptr, index int32, id *byte) int32
	fnSetNodeID     func(ph uintptr, index int32, id *byte) int32
	fnGetNodeType   func(ph uintptr, index int32, nodeType *int32) int32
	fnGetNodeValue  func(ph uintptr, index, property int32, value *float64) int32
	fnGetNodeValues func(ph uintptr, property int32, values *float64) int32
	fnSetNodeValue  func(ph uintptr, index, property int32, value float64) int32
	fnSetJuncData   func(ph uintptr, index int32, elev, demand float64, pattern *byte) int32
	fnSetTankData   func(ph uintptr, index int32, elev, initLvl, minLvl, maxLvl, diam, minVol float64, volCurve *byte) int32
	fnGetCoord      func(ph uintptr, index int32, x, y *float64) int32
	fnSetCoord      func(ph uintptr, index int32, x, y float64) int32

	// Nodal demand functions
	fnAddDemand        func(ph uintptr, nodeIndex int32, baseDemand float64, pattern, name *byte) int32
	fnDeleteDemand     func(ph uintptr, nodeIndex, demandIndex int32) int32
	fnGetDemandIndex   func(ph uintptr, nodeIndex int32, name *byte, demandIndex *int32) int32
	fnGetNumDemands    func(ph uintptr, nodeIndex int32, count *int32) int32
	fnGetBaseDemand    func(ph uintptr, nodeIndex, demandIndex int32, value *float64) int32
	fnSetBaseDemand    func(ph uintptr, nodeIndex, demandIndex int32, value float64) int32
	fnGetDemandPattern func(ph uintptr, nodeIndex, demandIndex int32, pattern *int32) int32
	fnSetDemandPattern func(ph uintptr, nodeIndex, demandIndex, pattern int32) int32
	fnGetDemandName    func(ph uintptr, nodeIndex, demandIndex int32, name *byte) int32
	fnSetDemandName    func(ph uintptr, nodeIndex, demandIndex int32, name *byte) int32

	// Link functions
	fnAddLink           func(ph uintptr, id *byte, linkType int32, fromNode, toNode *byte, index *int32) int32
	fnDeleteLink        func(ph uintptr, index, actionCode int32) int32
	fnGetLinkIndex      func(ph uintptr, id *byte, index *int32) int32
	fnGetLinkID         func(ph uintptr, index int32, id *byte) int32
	fnSetLinkID         func(ph uintptr, index int32, id *byte) int32
	fnGetLinkType       func(ph uintptr, index int32, linkType *int32) int32
	fnSetLinkType       func(ph uintptr, index *int32, linkType, actionCode int32) int32
	fnGetLinkNodes      func(ph uintptr, index int32, node1, node2 *int32) int32
	fnSetLinkNodes      func(ph uintptr, index, node1, node2 int32) int32
	fnGetLinkValue      func(ph uintptr, index, property int32, value *float64) int32
	fnGetLinkValues     func(ph uintptr, property int32, values *float64) int32
	fnSetLinkValue      func(ph uintptr, index, property int32, value float64) int32
	fnSetPipeData       func(ph uintptr, index int32, length, diam, rough, mloss float64) int32
	fnGetPumpType       func(ph uintptr, index int32, pumpType *int32) int32
	fnGetHeadCurveIndex func(ph uintptr, linkIndex int32, curveIndex *int32) int32
	fnSetHeadCurveIndex func(ph uintptr, linkIndex, curveIndex int32) int32
	fnGetVertexCount    func(ph uintptr, index int32, count *int32) int32
	fnGetVertex         func(ph uintptr, index, vertex int32, x, y *float64) int32
	fnSetVertex         func(ph uintptr, index, vertex int32, x, y float64) int32
	fnSetVertices       func(ph uintptr, index int32, x, y *float64, count int32) int32

	// Time pattern functions
	fnAddPattern             func(ph uintptr, id *byte) int32
	fnDeletePattern          func(ph uintptr, index int32) int32
	fnGetPatternIndex        func(ph uintptr, id *byte, index *int32) int32
	fnGetPatternID           func(ph uintptr, index int32, id *byte) int32
	fnSetPatternID           func(ph uintptr, index int32, id *byte) int32
	fnGetPatternLen          func(ph uintptr, index int32, length *int32) int32
	fnGetPatternValue        func(ph uintptr, index, period int32, value *float64) int32
	fnSetPatternValue        func(ph uintptr, index, period int32, value float64) int32
	fnGetAveragePatternValue func(ph uintptr, index int32, value *float64) int32
	fnSetPattern             func(ph uintptr, index int32, values *float64, length int32) int32
	fnLoadPatternFile        func(ph uintptr, filename, id *byte) int32

	// Data curve functions
	fnAddCurve      func(ph uintptr, id *byte) int32
	fnDeleteCurve   func(ph uintptr, index int32) int32
	fnGetCurveIndex func(ph uintptr, id *byte, index *int32) int32
	fnGetCurveID    func(ph uintptr, index int32, id *byte) int32
	fnSetCurveID    func(ph uintptr, index int32, id *byte) int32
	fnGetCurveLen   func(ph uintptr, index int32, length *int32) int32
	fnGetCurveType  func(ph uintptr, index int32, curveType *int32) int32
	fnSetCurveType  func(ph uintptr, index, curveType int32) int32
	fnGetCurveValue func(ph uintptr, curveIndex, pointIndex int32, x, y *float64) int32
	fnSetCurveValue func(ph uintptr, curveIndex, pointIndex int32, x, y float64) int32
	fnGetCurve      func(ph uintptr, index int32, id *byte, nPoints *int32, x, y *float64) int32
	fnSetCurve      func(ph uintptr, index int32, x, y *float64, nPoints int32) int32

	// Simple control functions
	fnAddControl        func(ph uintptr, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64, index *int32) int32
	fnDeleteControl     func(ph uintptr, index int32) int32
	fnGetControl        func(ph uintptr, index int32, controlType, linkIndex *int32, setting *float64, nodeIndex *int32, level *float64) int32
	fnSetControl        func(ph uintptr, index, controlType, linkIndex int32, setting float64, nodeIndex int32, level float64) int32
	fnGetControlEnabled func(ph uintptr, index int32, enabled *int32) int32
	fnSetControlEnabled func(ph uintptr, index, enabled int32) int32

	// Rule-based control functions
	fnAddRule         func(ph uintptr, rule *byte) int32
	fnDeleteRule      func(ph uintptr, index int32) int32
	fnGetRule         func(ph uintptr, index int32, nPremises, nThenActions, nElseActions *int32, priority *float64) int32
	fnGetRuleID       func(ph uintptr, index int32, id *byte) int32
	fnGetPremise      func(ph uintptr, ruleIndex, premiseIndex int32, logop, object, objIndex, variable, relop, status *int32, value *float64) int32
	fnSetPremise      func(ph uintptr, ruleIndex, premiseIndex, logop, object, objIndex, variable, relop, status int32, value float64) int32
	fnGetThenAction   func(ph uintptr, ruleIndex, actionIndex int32, linkIndex, status *int32, setting *float64) int32
	fnSetThenAction   func(ph uintptr, ruleIndex, actionIndex, linkIndex, status int32, setting float64) int32
	fnGetElseAction   func(ph uintptr, ruleIndex, actionIndex int32, linkIndex, status *int32, setting *float64) int32
	fnSetElseAction   func(ph uintptr, ruleIndex, actionIndex, linkIndex, status int32, setting float64) int32
	fnSetRulePriority func(ph uintptr, index int32, priority float64) int32
	fnGetRuleEnabled  func(ph uintptr, index int32, enabled *int32) int32
	fnSetRuleEnabled  func(ph uintptr, index, enabled int32) int32
)

// SetLibraryPath pins the shared library location. It must be called before
// the first Load to have any effect.
func SetLibraryPath(path string) {
	pathOverride = path
}

// libraryName returns the platform file name of the toolkit library
func libraryName() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "libepanet2.dylib"
	case "windows":
		return "epanet2.dll"
	default:
		return "libepanet2.so"
	}
}

// getLibraryPath returns the path to the dynamic library
func getLibraryPath() string {
	if pathOverride != "" {
		return pathOverride
	}

	// Check environment variable next
	var cfg libraryEnv
	if err := env.Parse(&cfg); err == nil && cfg.Path != "" {
		return cfg.Path
	}

	libName := libraryName()

	// Check common locations
	searchPaths := []string{
		// Current directory
		libName,
		// CMake build trees (development)
		filepath.Join("build", "lib", libName),
		filepath.Join("EPANET", "build", "lib", libName),
		filepath.Join("lib", libName),
	}

	// Also check relative to the executable
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}

	// Default to library name (let the system find it)
	return libName
}

// Load opens the toolkit library and registers every function pointer.
// It is safe to call repeatedly; only the first call does any work.
func Load() (Toolkit, error) {
	if err := initLibrary(); err != nil {
		return Toolkit{}, err
	}
	return Toolkit{}, nil
}

// Path returns the path the library was loaded (or last tried) from, or ""
// before Load.
func Path() string {
	return libPath
}

// initLibrary loads the dynamic library and registers all function pointers
func initLibrary() error {
	libOnce.Do(func() {
		libPath = getLibraryPath()

		libHandle, libErr = openLibrary(libPath)
		if libErr != nil {
			libErr = fmt.Errorf("failed to load epanet library from %s: %w", libPath, libErr)
			return
		}

		defer func() {
			// purego panics when a required symbol is missing
			if r := recover(); r != nil {
				libErr = fmt.Errorf("epanet library at %s is incomplete: %v", libPath, r)
			}
		}()

		registerProjectFunctions()
		registerHydraulicFunctions()
		registerQualityFunctions()
		registerReportFunctions()
		registerOptionFunctions()
		registerNodeFunctions()
		registerDemandFunctions()
		registerLinkFunctions()
		registerPatternFunctions()
		registerCurveFunctions()
		registerControlFunctions()
		registerRuleFunctions()

		initialized = true
	})

	if libErr == nil && !initialized {
		return ErrNotLoaded
	}
	return libErr
}

func registerProjectFunctions() {
	purego.RegisterLibFunc(&fnCreateProject, libHandle, "EN_createproject")
	purego.RegisterLibFunc(&fnDeleteProject, libHandle, "EN_deleteproject")
	purego.RegisterLibFunc(&fnInit, libHandle, "EN_init")
	purego.RegisterLibFunc(&fnOpen, libHandle, "EN_open")
	purego.RegisterLibFunc(&fnClose, libHandle, "EN_close")
	purego.RegisterLibFunc(&fnRunProject, libHandle, "EN_runproject")
	purego.RegisterLibFunc(&fnSaveInpFile, libHandle, "EN_saveinpfile")
	purego.RegisterLibFunc(&fnGetTitle, libHandle, "EN_gettitle")
	purego.RegisterLibFunc(&fnSetTitle, libHandle, "EN_settitle")
	purego.RegisterLibFunc(&fnGetComment, libHandle, "EN_getcomment")
	purego.RegisterLibFunc(&fnSetComment, libHandle, "EN_setcomment")
	purego.RegisterLibFunc(&fnGetCount, libHandle, "EN_getcount")
	purego.RegisterLibFunc(&fnGetVersion, libHandle, "EN_getversion")
	purego.RegisterLibFunc(&fnGetError, libHandle, "EN_geterror")
}

func registerHydraulicFunctions() {
	purego.RegisterLibFunc(&fnSolveH, libHandle, "EN_solveH")
	purego.RegisterLibFunc(&fnOpenH, libHandle, "EN_openH")
	purego.RegisterLibFunc(&fnInitH, libHandle, "EN_initH")
	purego.RegisterLibFunc(&fnRunH, libHandle, "EN_runH")
	purego.RegisterLibFunc(&fnNextH, libHandle, "EN_nextH")
	purego.RegisterLibFunc(&fnSaveH, libHandle, "EN_saveH")
	purego.RegisterLibFunc(&fnSaveHydFile, libHandle, "EN_savehydfile")
	purego.RegisterLibFunc(&fnUseHydFile, libHandle, "EN_usehydfile")
	purego.RegisterLibFunc(&fnCloseH, libHandle, "EN_closeH")
}

func registerQualityFunctions() {
	purego.RegisterLibFunc(&fnSolveQ, libHandle, "EN_solveQ")
	purego.RegisterLibFunc(&fnOpenQ, libHandle, "EN_openQ")
	purego.RegisterLibFunc(&fnInitQ, libHandle, "EN_initQ")
	purego.RegisterLibFunc(&fnRunQ, libHandle, "EN_runQ")
	purego.RegisterLibFunc(&fnNextQ, libHandle, "EN_nextQ")
	purego.RegisterLibFunc(&fnStepQ, libHandle, "EN_stepQ")
	purego.RegisterLibFunc(&fnCloseQ, libHandle, "EN_closeQ")
}

func registerReportFunctions() {
	purego.RegisterLibFunc(&fnWriteLine, libHandle, "EN_writeline")
	purego.RegisterLibFunc(&fnReport, libHandle, "EN_report")
	purego.RegisterLibFunc(&fnCopyReport, libHandle, "EN_copyreport")
	purego.RegisterLibFunc(&fnClearReport, libHandle, "EN_clearreport")
	purego.RegisterLibFunc(&fnResetReport, libHandle, "EN_resetreport")
	purego.RegisterLibFunc(&fnSetReport, libHandle, "EN_setreport")
	purego.RegisterLibFunc(&fnSetStatusReport, libHandle, "EN_setstatusreport")
	purego.RegisterLibFunc(&fnGetStatistic, libHandle, "EN_getstatistic")
	purego.RegisterLibFunc(&fnGetResultIndex, libHandle, "EN_getresultindex")
	purego.RegisterLibFunc(&fnTimeToNextEvent, libHandle, "EN_timetonextevent")
}

func registerOptionFunctions() {
	purego.RegisterLibFunc(&fnGetOption, libHandle, "EN_getoption")
	purego.RegisterLibFunc(&fnSetOption, libHandle, "EN_setoption")
	purego.RegisterLibFunc(&fnGetFlowUnits, libHandle, "EN_getflowunits")
	purego.RegisterLibFunc(&fnSetFlowUnits, libHandle, "EN_setflowunits")
	purego.RegisterLibFunc(&fnGetTimeParam, libHandle, "EN_gettimeparam")
	purego.RegisterLibFunc(&fnSetTimeParam, libHandle, "EN_settimeparam")
	purego.RegisterLibFunc(&fnGetQualInfo, libHandle, "EN_getqualinfo")
	purego.RegisterLibFunc(&fnGetQualType, libHandle, "EN_getqualtype")
	purego.RegisterLibFunc(&fnSetQualType, libHandle, "EN_setqualtype")
	purego.RegisterLibFunc(&fnGetDemandModel, libHandle, "EN_getdemandmodel")
	purego.RegisterLibFunc(&fnSetDemandModel, libHandle, "EN_setdemandmodel")
}

func registerNodeFunctions() {
	purego.RegisterLibFunc(&fnAddNode, libHandle, "EN_addnode")
	purego.RegisterLibFunc(&fnDeleteNode, libHandle, "EN_deletenode")
	purego.RegisterLibFunc(&fnGetNodeIndex, libHandle, "EN_getnodeindex")
	purego.RegisterLibFunc(&fnGetNodeID, libHandle, "EN_getnodeid")
	purego.RegisterLibFunc(&fnSetNodeID, libHandle, "EN_setnodeid")
	purego.RegisterLibFunc(&fnGetNodeType, libHandle, "EN_getnodetype")
	purego.RegisterLibFunc(&fnGetNodeValue, libHandle, "EN_getnodevalue")
	purego.RegisterLibFunc(&fnSetNodeValue, libHandle, "EN_setnodevalue")
	purego.RegisterLibFunc(&fnSetJuncData, libHandle, "EN_setjuncdata")
	purego.RegisterLibFunc(&fnSetTankData, libHandle, "EN_settankdata")
	purego.RegisterLibFunc(&fnGetCoord, libHandle, "EN_getcoord")
	purego.RegisterLibFunc(&fnSetCoord, libHandle, "EN_setcoord")

	// Added in EPANET 2.3
	registerOptionalFunc(&fnGetNodeValues, "EN_getnodevalues")
}

func registerDemandFunctions() {
	purego.RegisterLibFunc(&fnAddDemand, libHandle, "EN_adddemand")
	purego.RegisterLibFunc(&fnDeleteDemand, libHandle, "EN_deletedemand")
	purego.RegisterLibFunc(&fnGetDemandIndex, libHandle, "EN_getdemandindex")
	purego.RegisterLibFunc(&fnGetNumDemands, libHandle, "EN_getnumdemands")
	purego.RegisterLibFunc(&fnGetBaseDemand, libHandle, "EN_getbasedemand")
	purego.RegisterLibFunc(&fnSetBaseDemand, libHandle, "EN_setbasedemand")
	purego.RegisterLibFunc(&fnGetDemandPattern, libHandle, "EN_getdemandpattern")
	purego.RegisterLibFunc(&fnSetDemandPattern, libHandle, "EN_setdemandpattern")
	purego.RegisterLibFunc(&fnGetDemandName, libHandle, "EN_getdemandname")
	purego.RegisterLibFunc(&fnSetDemandName, libHandle, "EN_setdemandname")
}

func registerLinkFunctions() {
	purego.RegisterLibFunc(&fnAddLink, libHandle, "EN_addlink")
	purego.RegisterLibFunc(&fnDeleteLink, libHandle, "EN_deletelink")
	purego.RegisterLibFunc(&fnGetLinkIndex, libHandle, "EN_getlinkindex")
	purego.RegisterLibFunc(&fnGetLinkID, libHandle, "EN_getlinkid")
	purego.RegisterLibFunc(&fnSetLinkID, libHandle, "EN_setlinkid")
	purego.RegisterLibFunc(&fnGetLinkType, libHandle, "EN_getlinktype")
	purego.RegisterLibFunc(&fnSetLinkType, libHandle, "EN_setlinktype")
	purego.RegisterLibFunc(&fnGetLinkNodes, libHandle, "EN_getlinknodes")
	purego.RegisterLibFunc(&fnSetLinkNodes, libHandle, "EN_setlinknodes")
	purego.RegisterLibFunc(&fnGetLinkValue, libHandle, "EN_getlinkvalue")
	purego.RegisterLibFunc(&fnSetLinkValue, libHandle, "EN_setlinkvalue")
	purego.RegisterLibFunc(&fnSetPipeData, libHandle, "EN_setpipedata")
	purego.RegisterLibFunc(&fnGetPumpType, libHandle, "EN_getpumptype")
	purego.RegisterLibFunc(&fnGetHeadCurveIndex, libHandle, "EN_getheadcurveindex")
	purego.RegisterLibFunc(&fnSetHeadCurveIndex, libHandle, "EN_setheadcurveindex")
	purego.RegisterLibFunc(&fnGetVertexCount, libHandle, "EN_getvertexcount")
	purego.RegisterLibFunc(&fnGetVertex, libHandle, "EN_getvertex")
	purego.RegisterLibFunc(&fnSetVertices, libHandle, "EN_setvertices")

	// Added in EPANET 2.3
	registerOptionalFunc(&fnGetLinkValues, "EN_getlinkvalues")
	registerOptionalFunc(&fnSetVertex, "EN_setvertex")
}

func registerPatternFunctions() {
	purego.RegisterLibFunc(&fnAddPattern, libHandle, "EN_addpattern")
	purego.RegisterLibFunc(&fnDeletePattern, libHandle, "EN_deletepattern")
	purego.RegisterLibFunc(&fnGetPatternIndex, libHandle, "EN_getpatternindex")
	purego.RegisterLibFunc(&fnGetPatternID, libHandle, "EN_getpatternid")
	purego.RegisterLibFunc(&fnSetPatternID, libHandle, "EN_setpatternid")
	purego.RegisterLibFunc(&fnGetPatternLen, libHandle, "EN_getpatternlen")
	purego.RegisterLibFunc(&fnGetPatternValue, libHandle, "EN_getpatternvalue")
	purego.RegisterLibFunc(&fnSetPatternValue, libHandle, "EN_setpatternvalue")
	purego.RegisterLibFunc(&fnGetAveragePatternValue, libHandle, "EN_getaveragepatternvalue")
	purego.RegisterLibFunc(&fnSetPattern, libHandle, "EN_setpattern")

	// Added in EPANET 2.3
	registerOptionalFunc(&fnLoadPatternFile, "EN_loadpatternfile")
}

func registerCurveFunctions() {
	purego.RegisterLibFunc(&fnAddCurve, libHandle, "EN_addcurve")
	purego.RegisterLibFunc(&fnDeleteCurve, libHandle, "EN_deletecurve")
	purego.RegisterLibFunc(&fnGetCurveIndex, libHandle, "EN_getcurveindex")
	purego.RegisterLibFunc(&fnGetCurveID, libHandle, "EN_getcurveid")
	purego.RegisterLibFunc(&fnSetCurveID, libHandle, "EN_setcurveid")
	purego.RegisterLibFunc(&fnGetCurveLen, libHandle, "EN_getcurvelen")
	purego.RegisterLibFunc(&fnGetCurveType, libHandle, "EN_getcurvetype")
	purego.RegisterLibFunc(&fnGetCurveValue, libHandle, "EN_getcurvevalue")
	purego.RegisterLibFunc(&fnSetCurveValue, libHandle, "EN_setcurvevalue")
	purego.RegisterLibFunc(&fnGetCurve, libHandle, "EN_getcurve")
	purego.RegisterLibFunc(&fnSetCurve, libHandle, "EN_setcurve")

	// Added in EPANET 2.3
	registerOptionalFunc(&fnSetCurveType, "EN_setcurvetype")
}

func registerControlFunctions() {
	purego.RegisterLibFunc(&fnAddControl, libHandle, "EN_addcontrol")
	purego.RegisterLibFunc(&fnDeleteControl, libHandle, "EN_deletecontrol")
	purego.RegisterLibFunc(&fnGetControl, libHandle, "EN_getcontrol")
	purego.RegisterLibFunc(&fnSetControl, libHandle, "EN_setcontrol")

	// Added in EPANET 2.3
	registerOptionalFunc(&fnGetControlEnabled, "EN_getcontrolenabled")
	registerOptionalFunc(&fnSetControlEnabled, "EN_setcontrolenabled")
}

func registerRuleFunctions() {
	purego.RegisterLibFunc(&fnAddRule, libHandle, "EN_addrule")
	purego.RegisterLibFunc(&fnDeleteRule, libHandle, "EN_deleterule")
	purego.RegisterLibFunc(&fnGetRule, libHandle, "EN_getrule")
	purego.RegisterLibFunc(&fnGetRuleID, libHandle, "EN_getruleID")
	purego.RegisterLibFunc(&fnGetPremise, libHandle, "EN_getpremise")
	purego.RegisterLibFunc(&fnSetPremise, libHandle, "EN_setpremise")
	purego.RegisterLibFunc(&fnGetThenAction, libHandle, "EN_getthenaction")
	purego.RegisterLibFunc(&fnSetThenAction, libHandle, "EN_setthenaction")
	purego.RegisterLibFunc(&fnGetElseAction, libHandle, "EN_getelseaction")
	purego.RegisterLibFunc(&fnSetElseAction, libHandle, "EN_setelseaction")
	purego.RegisterLibFunc(&fnSetRulePriority, libHandle, "EN_setrulepriority")

	// Added in EPANET 2.3
	registerOptionalFunc(&fnGetRuleEnabled, "EN_getruleenabled")
	registerOptionalFunc(&fnSetRuleEnabled, "EN_setruleenabled")
}

// registerOptionalFunc registers a function only when the symbol exists
func registerOptionalFunc[T any](fn *T, name string) {
	if _, err := getSymbol(libHandle, name); err != nil {
		return
	}
	purego.RegisterLibFunc(fn, libHandle, name)
}

// ============================================================================
// String Helpers for FFI
// ============================================================================

// cString returns a NUL-terminated copy of s.
func cString(s string) []byte {
	return append([]byte(s), 0)
}

// goString converts a NUL-terminated buffer to a Go string
func goString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// goStringPtr converts a C string pointer to a Go string
func goStringPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length > MaxMsgSize { // Toolkit messages never exceed EN_MAXMSG
			break
		}
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}
