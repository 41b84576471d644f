package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

type cliState struct {
	dataPath     string
	taxonomyPath string
}

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderrWriter, err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &cliState{
		dataPath:     catalog.DefaultPath,
		taxonomyPath: taxonomy.DefaultPath,
	}

	root := &cobra.Command{
		Use:           "promptctl",
		Short:         "Inspect and maintain the marketplace catalog",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&st.dataPath, "data", st.dataPath, "path to marketplace snapshot")
	root.PersistentFlags().StringVar(&st.taxonomyPath, "taxonomy", st.taxonomyPath, "path to taxonomy file")

	root.AddCommand(newListCmd(st))
	root.AddCommand(newShowCmd(st))
	root.AddCommand(newValidateCmd(st))
	root.AddCommand(newMergeCmd(st))
	return root
}
