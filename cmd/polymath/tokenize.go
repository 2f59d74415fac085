package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polymath/internal/driver"
	"polymath/internal/source"
	"polymath/internal/treefmt"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <source>",
		Short: "Print the tokens of an expression",
		Long:  `Tokenize breaks an AsciiMath expression down into its tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|line)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	src, err := readSource(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	res := driver.Convert(cmd.Context(), src, convertOptions(cmd, cfg))
	if showTimings(cmd) {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timings.String())
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		opts := treefmt.TokenOptions{Color: useColorOn(os.Stdout, cmd)}
		return treefmt.FormatTokensPretty(out, res.Tokens, source.NewText(res.Source), opts)
	case "json":
		return treefmt.FormatTokensJSON(out, res.Tokens)
	case "line":
		_, err := fmt.Fprintln(out, treefmt.TokensLine(res.Tokens))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
