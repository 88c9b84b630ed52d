package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/mycv/internal/repository"
	"github.com/jonathan/mycv/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every resume data file",
	Long:  "Parse and validate resume_{ru,en,th}.toml and report the result per language.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, lang := range types.Languages() {
		path := repository.FilePath(cfg.AssetsDir, lang)
		if _, err := repository.ReadFile(cfg.AssetsDir, lang); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s %s\n     %v\n", lang, path, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s %s\n", lang, path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d resume files are invalid", failed, len(types.Languages()))
	}
	return nil
}
