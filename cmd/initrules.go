package cmd

import (
	"fmt"

	"organize/internal/pathutil"
	"organize/internal/rules"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const defaultRulesPath = "organize_rules.json"

var initRulesCmd = &cobra.Command{
	Use:   "init-rules [PATH]",
	Short: "Write a sample custom rules file and exit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultRulesPath
		if len(args) == 1 {
			path = args[0]
		}
		path, err := pathutil.Absolutize(path)
		if err != nil {
			return err
		}
		if err := rules.WriteSample(afero.NewOsFs(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sample rules written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initRulesCmd)
}
