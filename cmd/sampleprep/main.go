package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/ventfan/sampleprep"
	"github.com/ventfan/sampleprep/internal/cli"
)

var version = "0.1.0"

// CLI defines the command-line interface. The defaults match the fixed
// parameters the sample packs have always been prepared with, so a bare
// invocation behaves exactly like the original tool.
type CLI struct {
	Input            string  `short:"i" default:"samples_raw" help:"Directory of raw samples"`
	Output           string  `short:"o" default:"samples" help:"Directory for processed samples and the manifest"`
	TargetDBFS       float64 `name:"target-dbfs" default:"-6.0" help:"Loudness to normalize every sample to"`
	SilenceThreshold float64 `name:"silence-threshold" default:"-40.0" help:"Level (dBFS) below which leading audio counts as silence"`
	MinSilence       int     `name:"min-silence" default:"50" help:"Minimum silence span in milliseconds"`
	Version          bool    `short:"v" help:"Show version information"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("sampleprep"),
		kong.Description("Batch-normalize audio samples for the beat simulator"),
		kong.UsageOnError(),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	cfg := sampleprep.DefaultConfig()
	cfg.TargetDBFS = cliArgs.TargetDBFS
	cfg.SilenceThresholdDBFS = cliArgs.SilenceThreshold
	cfg.MinSilenceMS = cliArgs.MinSilence

	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	n := sampleprep.NewNormalizer(cfg)
	if err := n.Run(cliArgs.Input, cliArgs.Output); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
