package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brettwhite-git/suiteprompt/internal/submission"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

var errInvalidSubmission = errors.New("promptctl: submission is invalid")

func newValidateCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <submission.json>",
		Short: "Validate a submission payload without submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("promptctl: read %q: %w", args[0], err)
			}

			var req submission.Request
			if err := json.Unmarshal(b, &req); err != nil {
				return fmt.Errorf("promptctl: parse %q: %w", args[0], err)
			}

			tax, err := taxonomy.Load(st.taxonomyPath)
			if err != nil {
				return err
			}

			if verr := submission.Validate(&req, tax); verr != nil {
				for _, f := range verr.Fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Message)
				}
				return errInvalidSubmission
			}

			fmt.Fprintln(cmd.OutOrStdout(), "submission is valid")
			return nil
		},
	}
}
