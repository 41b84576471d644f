package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
)

func newShowCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one catalog item as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("promptctl: missing item id")
			}

			cat, err := catalog.Load(st.dataPath)
			if err != nil {
				return err
			}

			var item any
			if p, ok := cat.PromptByID(id); ok {
				item = p
			} else if s, ok := cat.SkillByID(id); ok {
				item = s
			} else {
				return fmt.Errorf("promptctl: item %q not found", id)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(item)
		},
	}
}
