package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
)

// merge folds an approved submission record into the catalog snapshot. This
// is the reviewer's step after the submission PR is merged into the content
// repository.
func newMergeCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <submission.json>",
		Short: "Merge an approved submission into the marketplace snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("promptctl: read %q: %w", args[0], err)
			}

			var prompt catalog.Prompt
			if err := json.Unmarshal(b, &prompt); err != nil {
				return fmt.Errorf("promptctl: parse %q: %w", args[0], err)
			}
			if prompt.ID == "" {
				return fmt.Errorf("promptctl: %q: submission has no id", args[0])
			}

			raw, err := os.ReadFile(st.dataPath)
			if err != nil {
				return fmt.Errorf("promptctl: read %q: %w", st.dataPath, err)
			}
			var data catalog.Data
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("promptctl: parse %q: %w", st.dataPath, err)
			}

			for _, p := range data.Prompts {
				if p.ID == prompt.ID {
					return fmt.Errorf("promptctl: duplicate prompt id %q", prompt.ID)
				}
			}

			data.Prompts = append(data.Prompts, prompt)
			sort.SliceStable(data.Prompts, func(i, j int) bool {
				return parseCreatedAt(data.Prompts[i].CreatedAt).After(parseCreatedAt(data.Prompts[j].CreatedAt))
			})

			out, err := json.MarshalIndent(&data, "", "  ")
			if err != nil {
				return fmt.Errorf("promptctl: encode snapshot: %w", err)
			}
			if err := os.WriteFile(st.dataPath, append(out, '\n'), 0o644); err != nil {
				return fmt.Errorf("promptctl: write %q: %w", st.dataPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added %q to marketplace (%d prompts)\n", prompt.Title, len(data.Prompts))
			return nil
		},
	}
}

func parseCreatedAt(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}
