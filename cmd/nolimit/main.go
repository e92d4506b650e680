package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`
	Config  string           `short:"c" help:"Path to an HCL configuration file" type:"path"`

	Play     PlayCmd     `cmd:"" help:"Play a session of hands and print each result"`
	Simulate SimulateCmd `cmd:"" help:"Run a large simulation and report statistics"`
	Serve    ServeCmd    `cmd:"" help:"Play continuous sessions and stream them to websocket subscribers"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nolimit"),
		kong.Description("No-limit hold'em betting simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}

// resolveSeed turns the zero seed into a time-based one so repeated runs
// differ unless the user pins a seed.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
