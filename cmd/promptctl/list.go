package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
)

func newListCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(newListPromptsCmd(st))
	cmd.AddCommand(newListSkillsCmd(st))
	return cmd
}

func newListPromptsCmd(st *cliState) *cobra.Command {
	var sortBy string
	var businessArea string

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "List marketplace prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(st.dataPath)
			if err != nil {
				return err
			}
			prompts := cat.Prompts(catalog.Filters{SortBy: sortBy, BusinessArea: businessArea})

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tFORMAT\tAREA\tRATING\tDOWNLOADS")
			for _, p := range prompts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%d\n",
					p.ID, p.Title, p.Format, p.BusinessArea, p.Rating.Average, p.Downloads)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (popularity, rating, newest, downloads)")
	cmd.Flags().StringVar(&businessArea, "area", "", "filter by business area")
	return cmd
}

func newListSkillsCmd(st *cliState) *cobra.Command {
	var sortBy string
	var businessArea string

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List marketplace skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(st.dataPath)
			if err != nil {
				return err
			}
			skills := cat.Skills(catalog.Filters{SortBy: sortBy, BusinessArea: businessArea})

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tAREA\tVERSION\tRATING\tDOWNLOADS")
			for _, s := range skills {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%d\n",
					s.ID, s.Title, s.BusinessArea, s.Version, s.Rating.Average, s.Downloads)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (popularity, rating, newest, downloads)")
	cmd.Flags().StringVar(&businessArea, "area", "", "filter by business area")
	return cmd
}
