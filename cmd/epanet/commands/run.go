package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agiangrant/epanet"
	"go.uber.org/zap"
)

// Run implements the 'epanet run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	rptFile := fs.String("rpt", "", "Report file (default: <input>.rpt)")
	outFile := fs.String("out", "", "Binary output file (default: <input>.out)")
	lib := fs.String("lib", "", "Path to the EPANET shared library")
	progress := fs.Bool("progress", false, "Print progress messages")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: epanet run [options] <file.inp>")
	}
	inpFile := fs.Arg(0)

	config, log, done, err := setup(*lib)
	if err != nil {
		return err
	}
	defer done()

	if *progress {
		config.Run.Progress = true
	}
	rpt, out := outputPaths(inpFile, config.Run)
	if *rptFile != "" {
		rpt = *rptFile
	}
	if *outFile != "" {
		out = *outFile
	}

	fmt.Printf("Running %s\n", inpFile)
	start := time.Now()
	if err := runFile(inpFile, rpt, out, config.Run.Progress, log); err != nil {
		return err
	}

	fmt.Printf("  ✓ Report written to %s\n", rpt)
	if out != "" {
		fmt.Printf("  ✓ Output written to %s\n", out)
	}
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// runFile runs one complete simulation on its own project. Toolkit warnings
// are logged and do not fail the run.
func runFile(inpFile, rpt, out string, progress bool, log *zap.Logger) error {
	for _, path := range []string{rpt, out} {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	p, err := epanet.NewProject()
	if err != nil {
		return err
	}
	defer p.Close()

	var cb func(string)
	if progress {
		cb = func(msg string) {
			fmt.Printf("    %s\n", msg)
		}
	}

	err = p.RunProject(inpFile, rpt, out, cb)
	if epanet.IsWarning(err) {
		log.Warn("simulation finished with warnings", zap.String("input", inpFile), zap.Error(err))
		return nil
	}
	return err
}
