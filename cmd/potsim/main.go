// Command potsim runs the interactive pot-head simulator: a roster of
// differently configured pots driven by one simulated ADC input.
//
// Usage:
//
//	potsim              # built-in demo roster
//	potsim -s pots.yaml # session from a YAML spec file
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HybridChild/pot-head/internal/potsim"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Spec    string `short:"s" type:"path" help:"YAML session spec (defaults to the built-in roster)"`
	Version bool   `short:"v" help:"Show version information"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("potsim"),
		kong.Description("Interactive simulator for pot-head processing pipelines"),
		kong.UsageOnError(),
	)

	if cliArgs.Version {
		fmt.Printf("potsim %s\n", version)
		os.Exit(0)
	}

	spec := potsim.DefaultSpecFile()
	if cliArgs.Spec != "" {
		loaded, err := potsim.LoadSpecFile(cliArgs.Spec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		spec = loaded
	}

	pots, err := spec.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	model := potsim.NewModel(spec.Input, pots)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
