package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"polymath/internal/driver"
	"polymath/internal/treefmt"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <source>",
		Short: "Print the syntax tree of an expression",
		Long: `Parse shows an intermediate tree of the pipeline.
--stage cst prints the concrete syntax tree, lower the AST before table
recognition and ast (or transform) the AST that is rendered.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("stage", "ast", "tree to print (cst|lower|ast)")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	stageFlag, err := cmd.Flags().GetString("stage")
	if err != nil {
		return fmt.Errorf("failed to get stage flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	stage, err := driver.ParseStage(stageFlag)
	if err != nil {
		return err
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

	tree, err := stageTree(res, stage)
	if err != nil {
		return err
	}
	if format == "json" {
		return treefmt.WriteJSON(cmd.OutOrStdout(), tree)
	}
	return treefmt.WriteTree(cmd.OutOrStdout(), tree)
}

func stageTree(res *driver.Result, stage driver.Stage) (*treefmt.Node, error) {
	switch stage {
	case driver.StageParse:
		return treefmt.FromCST(res.CST), nil
	case driver.StageLower:
		return treefmt.FromDocument(res.AST), nil
	case driver.StageTransform:
		return treefmt.FromDocument(res.Transformed), nil
	default:
		return nil, fmt.Errorf("stage %q has no tree (expected: cst|lower|ast)", stage)
	}
}
