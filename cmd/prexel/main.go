// Command prexel is a CLI front-end over the expression engine: it
// evaluates a single expression, inspects a numeric kind's Context, or
// batch-evaluates every line of a file.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version information (set during build via ldflags, or detected from build info)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						GitCommit = setting.Value[:7]
					}
				case "vcs.time":
					BuildTime = setting.Value
				}
			}
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "prexel",
		Short: "Prexel: a mathematical expression evaluator",
		Long: `Prexel evaluates mathematical expressions against one of several
numeric kinds (decimal, float, fixed, complex, binary).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}

	initConfig()

	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newContextCommand())
	rootCmd.AddCommand(newRunCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
