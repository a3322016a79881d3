package cmd

import (
	"errors"
	"fmt"

	"organize/internal/classify"
	"organize/internal/fs"
	"organize/internal/organizer"
	"organize/internal/pathutil"
	"organize/internal/report"
	"organize/internal/rules"
	"organize/internal/scan"
	"organize/internal/undo"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	runTargetDir     string
	runByType        bool
	runByDate        bool
	runBySize        bool
	runByName        string
	runRulesFile     string
	runDateFormat    string
	runUseCreation   bool
	runCategories    string
	runDetectContent bool
	runRecursive     bool
	runIncludeHidden bool
	runExclude       []string
	runCopy          bool
	runExecute       bool
	runUndoScript    string
)

var runCmd = &cobra.Command{
	Use:   "run SOURCE",
	Short: "Organize the files in SOURCE into subfolders",
	Long: `Organize the files in SOURCE into subfolders chosen by one strategy:
file type, date, size, name patterns, or a custom rules document.

Runs are dry by default and only report what would happen; pass --execute
to apply. Note that a dry run reports unsuffixed destination names: files
that would collide are only renamed (photo_1.jpg, ...) during a live run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := pathutil.Absolutize(args[0])
		if err != nil {
			return err
		}
		target := source
		if runTargetDir != "" {
			if target, err = pathutil.Absolutize(runTargetDir); err != nil {
				return err
			}
		}

		fsys := fs.NewReal()
		strategy, err := buildStrategy(fsys)
		if err != nil {
			return err
		}

		dryRun := !runExecute
		result, err := organizer.Organize(fsys, organizer.Options{
			Source:     source,
			TargetRoot: target,
			Scan: scan.Options{
				Recursive:     runRecursive,
				IncludeHidden: runIncludeHidden,
				Exclude:       runExclude,
			},
			Strategy: strategy,
			DryRun:   dryRun,
			Copy:     runCopy,
			Progress: true,
		})
		if err != nil {
			return err
		}

		report.NewRenderer(cmd.OutOrStdout(), dryRun).Render(result.Stats, target)

		if runUndoScript != "" {
			return writeUndoScript(cmd, fsys, result.Log.Destinations(), source, dryRun)
		}
		return nil
	},
}

// buildStrategy assembles the classifier the flags asked for. Exactly one
// strategy flag is set by the time this runs; cobra enforces that.
func buildStrategy(fsys afero.Fs) (classify.Strategy, error) {
	switch {
	case runByType:
		byType := &classify.ByType{}
		if runCategories != "" {
			categories, err := classify.LoadCategories(fsys, pathutil.ExpandTilde(runCategories))
			if err != nil {
				return nil, err
			}
			byType.Categories = categories
		}
		if runDetectContent {
			byType.Detector = &classify.ContentDetector{Fs: fsys}
		}
		return byType, nil
	case runByDate:
		return &classify.ByDate{Format: runDateFormat, UseBirthTime: runUseCreation}, nil
	case runBySize:
		return &classify.BySize{}, nil
	case runByName != "":
		patterns, err := classify.ParsePatterns([]byte(runByName))
		if err != nil {
			return nil, err
		}
		return &classify.ByName{Patterns: patterns}, nil
	case runRulesFile != "":
		set, err := rules.Load(fsys, pathutil.ExpandTilde(runRulesFile))
		if err != nil {
			return nil, err
		}
		return &classify.ByRules{Set: set}, nil
	}
	return nil, errors.New("no organization method specified")
}

func writeUndoScript(cmd *cobra.Command, fsys afero.Fs, destinations []string, source string, dryRun bool) error {
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "undo script skipped: dry run moved nothing")
		return nil
	}
	path, err := pathutil.Absolutize(runUndoScript)
	if err != nil {
		return err
	}
	err = undo.Write(fsys, path, destinations, source)
	if errors.Is(err, undo.ErrNothingToUndo) {
		fmt.Fprintln(cmd.OutOrStdout(), "no files were moved; undo script not written")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "undo script written to %s\n", path)
	return nil
}

func init() {
	runCmd.Flags().StringVar(&runTargetDir, "target-dir", "", "target directory (default: same as SOURCE)")

	runCmd.Flags().BoolVar(&runByType, "by-type", false, "organize by file type")
	runCmd.Flags().BoolVar(&runByDate, "by-date", false, "organize by file date")
	runCmd.Flags().BoolVar(&runBySize, "by-size", false, "organize by file size")
	runCmd.Flags().StringVar(&runByName, "by-name", "", "organize by name patterns (ordered JSON object, folder to substring)")
	runCmd.Flags().StringVar(&runRulesFile, "rules", "", "organize using a custom rules file (JSON)")
	runCmd.MarkFlagsOneRequired("by-type", "by-date", "by-size", "by-name", "rules")
	runCmd.MarkFlagsMutuallyExclusive("by-type", "by-date", "by-size", "by-name", "rules")

	runCmd.Flags().StringVar(&runDateFormat, "date-format", classify.DefaultDateFormat, "strftime folder template for --by-date")
	runCmd.Flags().BoolVar(&runUseCreation, "use-creation-date", false, "use creation time instead of modification time")
	runCmd.Flags().StringVar(&runCategories, "categories", "", "YAML file overriding the category table for --by-type")
	runCmd.Flags().BoolVar(&runDetectContent, "detect-content", false, "sniff the content type of extensionless files for --by-type")

	runCmd.Flags().BoolVarP(&runRecursive, "recursive", "r", false, "process files in subdirectories")
	runCmd.Flags().BoolVar(&runIncludeHidden, "include-hidden", false, "include hidden files")
	runCmd.Flags().StringArrayVar(&runExclude, "exclude", nil, "exclude paths matching glob (repeatable)")
	runCmd.Flags().BoolVar(&runCopy, "copy", false, "copy files instead of moving them")
	runCmd.Flags().BoolVar(&runExecute, "execute", false, "apply changes (default is a dry run)")
	runCmd.Flags().StringVar(&runUndoScript, "undo-script", "", "write a reversal script to this path after a live run")

	rootCmd.AddCommand(runCmd)
}
