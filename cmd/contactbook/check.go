package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contactbook/contactbook/pkg/contact"
)

// errCheckFailed makes the process exit non-zero after the report is printed.
var errCheckFailed = errors.New("store check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the contacts file for broken records",
	Long: `Check reads the contacts file and reports:
  - records without an id
  - ids used by more than one record
  - records with an empty field, an invalid email or an invalid phone

It exits with status 1 when the file cannot be read or has errors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := contact.Audit(cmd.Context(), contactStore())
		if err != nil {
			return fmt.Errorf("failed to read store: %w", err)
		}

		if err := printResult(cmd.OutOrStdout(), cfg.Output, res); err != nil {
			return err
		}
		if !res.Success {
			return fmt.Errorf("%w: %d error(s)", errCheckFailed, len(res.Errors()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
