package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/mycv/internal/schemas"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema resume data files are checked against",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), schemas.ResumeSchema())
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
