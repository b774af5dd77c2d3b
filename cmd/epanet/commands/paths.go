package commands

import (
	"path/filepath"
	"strings"
)

// outputPaths derives the report and binary output file names for an input
// file. Empty directories place the files next to the input.
func outputPaths(inpFile string, run RunConfig) (rpt, out string) {
	base := strings.TrimSuffix(filepath.Base(inpFile), filepath.Ext(inpFile))

	rptDir := run.ReportDir
	if rptDir == "" {
		rptDir = filepath.Dir(inpFile)
	}
	rpt = filepath.Join(rptDir, base+".rpt")

	if !run.SaveOutput {
		return rpt, ""
	}
	outDir := run.OutputDir
	if outDir == "" {
		outDir = rptDir
	}
	return rpt, filepath.Join(outDir, base+".out")
}
