package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"polymath/internal/config"
	"polymath/internal/driver"
)

func readColorMode(value string, tty bool) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return tty, nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// readSource returns the expression given on the command line. "-" reads
// all of stdin with a single trailing newline removed.
func readSource(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// convertOptions merges the config file with the --nfc flag; an explicit
// flag wins.
func convertOptions(cmd *cobra.Command, cfg *config.Config) driver.Options {
	opts := driver.Options{Normalize: cfg.Input.Normalize}
	if f := cmd.Root().PersistentFlags().Lookup("nfc"); f != nil && f.Changed {
		opts.Normalize = f.Value.String() == "true"
	}
	return opts
}

func showTimings(cmd *cobra.Command) bool {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	return err == nil && on
}

func useColorOn(f *os.File, cmd *cobra.Command) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	on, err := readColorMode(colorFlag, isTerminal(f))
	return err == nil && on
}
