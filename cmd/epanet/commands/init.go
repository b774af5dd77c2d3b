package commands

import (
	"flag"
	"fmt"
	"os"
)

// Init implements the 'epanet init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	lib := fs.String("lib", "", "Path to the EPANET shared library")
	reportDir := fs.String("report-dir", "", "Directory for report files")
	workers := fs.Int("workers", 0, "Batch workers (0 = one per CPU)")
	force := fs.Bool("force", false, "Overwrite an existing epanet.toml")
	fs.Parse(args)

	if _, err := os.Stat(ConfigFile); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", ConfigFile)
	}
	if *workers < 0 {
		return fmt.Errorf("--workers must not be negative")
	}

	config := DefaultConfig()
	config.Library.Path = *lib
	config.Run.ReportDir = *reportDir
	config.Batch.Workers = *workers

	if err := SaveConfig(".", config); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", ConfigFile)

	fmt.Println("\nNext steps:")
	fmt.Println("  epanet info <file.inp>")
	fmt.Println("  epanet run <file.inp>")
	return nil
}
