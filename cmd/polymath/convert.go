package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"polymath/internal/config"
	"polymath/internal/driver"
	"polymath/internal/preview"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] <source>",
		Short: "Convert an AsciiMath expression to MathML",
		Long: `Convert prints the MathML markup for an expression.
With --browser the markup is written to an HTML page and opened in the default viewer.
The page is kept unless --remove-after gives a delay after which it is deleted.
Use "-" to read the expression from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().BoolP("browser", "b", false, "open the result in a browser instead of printing it")
	cmd.Flags().Duration("remove-after", 0, "delete the HTML page after this delay (0 keeps it)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
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

	browser, err := cmd.Flags().GetBool("browser")
	if err != nil {
		return fmt.Errorf("failed to get browser flag: %w", err)
	}
	linger, err := pageLinger(cmd, cfg)
	if err != nil {
		return err
	}

	res := driver.Convert(cmd.Context(), src, convertOptions(cmd, cfg))
	if showTimings(cmd) {
		fmt.Fprint(cmd.ErrOrStderr(), res.Timings.String())
	}

	if !browser {
		fmt.Fprintln(cmd.OutOrStdout(), res.MathML)
		return nil
	}

	page, err := preview.Open(cmd.Context(), res.MathML, preview.Options{Browser: cfg.Preview.Browser}, nil)
	if err != nil {
		if page != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "page written to %s\n", page)
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), page)
	if linger == 0 {
		return nil
	}
	return preview.Cleanup(cmd.Context(), page, linger)
}

// pageLinger is how long the preview page stays on disk; zero keeps it.
// --remove-after wins over [preview].remove_after.
func pageLinger(cmd *cobra.Command, cfg *config.Config) (time.Duration, error) {
	if f := cmd.Flags().Lookup("remove-after"); f != nil && f.Changed {
		d, err := cmd.Flags().GetDuration("remove-after")
		if err != nil {
			return 0, fmt.Errorf("failed to get remove-after flag: %w", err)
		}
		if d < 0 {
			return 0, fmt.Errorf("--remove-after must not be negative")
		}
		return d, nil
	}
	return cfg.Preview.Linger()
}
