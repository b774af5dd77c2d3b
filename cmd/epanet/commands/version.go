package commands

import (
	"fmt"

	"github.com/agiangrant/epanet"
)

// Version implements the 'epanet version' command. A missing toolkit is
// reported but is not an error.
func Version(cliVersion string) error {
	fmt.Printf("epanet version %s\n", cliVersion)

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	if err := epanet.LoadLibrary(config.Library.Path); err != nil {
		fmt.Printf("toolkit: not loaded (%v)\n", err)
		return nil
	}

	v, err := epanet.ToolkitVersion()
	if err != nil {
		return err
	}
	fmt.Printf("toolkit: %s (%s)\n", formatVersion(v), epanet.LibraryPath())
	return nil
}

// formatVersion renders a toolkit version number such as 20300 as 2.3.0.
func formatVersion(v int) string {
	return fmt.Sprintf("%d.%d.%d", v/10000, v/100%100, v%100)
}
