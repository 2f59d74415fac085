package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"polymath/internal/config"
	"polymath/internal/version"
)

// newRootCmd builds the command tree. Commands are constructed per call so
// tests can execute them with fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "polymath",
		Short:         "AsciiMath to MathML converter",
		Long:          `Polymath converts AsciiMath expressions into MathML markup`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
			if err != nil {
				return err
			}
			useColor, err := readColorMode(colorFlag, isTerminal(os.Stdout))
			if err != nil {
				return err
			}
			color.NoColor = !useColor
			return nil
		},
	}

	root.AddCommand(newConvertCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("config", "", "path to polymath.toml or polymath.yaml (default: search upward)")
	root.PersistentFlags().Bool("timings", false, "show per-stage timing information")
	root.PersistentFlags().Bool("nfc", false, "normalize input to Unicode NFC before tokenizing")
	root.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr)")
	root.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	root.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	root.PersistentFlags().Int("trace-ring-size", 4096, "ring buffer capacity for ring and both modes")
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig reads the file named by --config, or discovers one upward
// from the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
