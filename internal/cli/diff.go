package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type diffOptions struct {
	kind        string
	search      string
	showValues  bool
	copySummary bool
	exitCode    bool
}

func (o *diffOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.kind, "kind", models.DiffFilterAll, "all, added, removed, modified or unchanged")
	cmd.Flags().StringVar(&o.search, "search", "", "keep keys or values containing this text")
	cmd.Flags().BoolVar(&o.showValues, "show-values", false, "print secret values in clear text")
	cmd.Flags().BoolVar(&o.copySummary, "copy", false, "copy the change summary to the clipboard")
	cmd.Flags().BoolVar(&o.exitCode, "exit-code", false, "exit with an error when the sides differ")
}

var errDifferent = errors.New("environments differ")

// render prints the filtered diff and the statistics of the whole result.
func (o *diffOptions) render(cmd *cobra.Command, result models.DiffResult, leftLabel, rightLabel string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s  %s  %s\n\n", color.CyanString(leftLabel), "→", color.CyanString(rightLabel))
	entries := service.FilterBySearch(service.FilterByKind(result, o.kind), o.search)
	printDiff(out, entries, leftLabel, rightLabel, o.showValues)

	stats := service.Statistics(result)
	printStatistics(out, stats)

	if o.copySummary {
		if err := clipboard.WriteAll(service.FormatSummary(result, leftLabel, rightLabel)); err != nil {
			return fmt.Errorf("copy summary: %w", err)
		}
		fmt.Fprintf(out, "%s Summary copied to the clipboard\n", markOK)
	}

	if o.exitCode && stats.TotalChanges > 0 {
		return errDifferent
	}
	return nil
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <project> <left-env> <right-env>",
		Short: "Compare two environments of a project key by key",
		Long: `Compare two environments of a project. Keys only on the right are
added (+), keys only on the left are removed (-), keys on both sides with
different values are modified (~) and the rest are unchanged (=).`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				left, right, err := environmentPair(ctx, rt, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				result, err := rt.services.VaultService.Compare(ctx, left.ID, right.ID)
				if err != nil {
					return fmt.Errorf("compare: %w", err)
				}
				return opts.render(cmd, result, left.Name, right.Name)
			})
		},
	}

	opts.addFlags(cmd)

	return cmd
}

// NewDiffFileCommand creates the diff-file command.
func NewDiffFileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff-file <project> <env> <file>",
		Short: "Compare an environment with a .env file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileRecords, err := readDotenvRecords(args[2])
			if err != nil {
				return err
			}

			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				records, err := rt.services.VaultService.ListRecords(ctx, env.ID)
				if err != nil {
					return err
				}
				return opts.render(cmd, service.Compute(records, fileRecords), env.Name, filepath.Base(args[2]))
			})
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func readDotenvRecords(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]models.Record, 0, len(keys))
	for _, k := range keys {
		records = append(records, models.Record{Key: k, Value: values[k]})
	}
	return records, nil
}

func environmentPair(ctx context.Context, rt *runtime, project, leftName, rightName string) (models.Environment, models.Environment, error) {
	left, err := rt.environment(ctx, project, leftName)
	if err != nil {
		return models.Environment{}, models.Environment{}, err
	}
	right, err := rt.environment(ctx, project, rightName)
	if err != nil {
		return models.Environment{}, models.Environment{}, err
	}
	if left.ID == right.ID {
		return models.Environment{}, models.Environment{}, errors.New("choose two different environments")
	}
	return left, right, nil
}

type promoteOptions struct {
	direction string
}

// NewPromoteCommand creates the promote command.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &promoteOptions{}

	cmd := &cobra.Command{
		Use:   "promote <project> <left-env> <right-env> <key>",
		Short: "Copy one differing key between two environments",
		Long: `Copy one key between two environments.

  left-to-right  modified: update the right value; added: create the key on the left
  right-to-left  modified: update the left value; removed: create the key on the right

Added keys exist only on the right, removed keys only on the left.

Any other combination leaves both environments untouched.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, ok := models.ParseDirection(opts.direction)
			if !ok {
				return fmt.Errorf("unknown direction %q, use left-to-right or right-to-left", opts.direction)
			}

			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				left, right, err := environmentPair(ctx, rt, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				result, err := rt.services.VaultService.Compare(ctx, left.ID, right.ID)
				if err != nil {
					return fmt.Errorf("compare: %w", err)
				}

				entry, found := findEntry(result, args[3])
				if !found {
					return fmt.Errorf("%s is in neither %s nor %s", args[3], left.Name, right.Name)
				}

				_, err = rt.services.VaultService.PromoteEntry(ctx, entry, direction, left.ID, right.ID)
				if errors.Is(err, service.ErrPromotionNotAllowed) {
					return fmt.Errorf("%s has the same value in both environments", entry.Key)
				}
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), promotionMessage(entry, direction, left.Name, right.Name))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.direction, "direction", "left-to-right", "left-to-right or right-to-left")

	return cmd
}

func findEntry(result models.DiffResult, key string) (models.DiffEntry, bool) {
	for _, e := range result.All() {
		if e.Key == key {
			return e, true
		}
	}
	return models.DiffEntry{}, false
}

func promotionMessage(entry models.DiffEntry, direction models.Direction, leftName, rightName string) string {
	switch {
	case entry.Kind == models.DiffAdded && direction == models.LeftToRight:
		return fmt.Sprintf("%s %s created in %s", markOK, entry.Key, leftName)
	case entry.Kind == models.DiffRemoved && direction == models.RightToLeft:
		return fmt.Sprintf("%s %s created in %s", markOK, entry.Key, rightName)
	case entry.Kind == models.DiffModified && direction == models.LeftToRight:
		return fmt.Sprintf("%s %s updated in %s", markOK, entry.Key, rightName)
	case entry.Kind == models.DiffModified && direction == models.RightToLeft:
		return fmt.Sprintf("%s %s updated in %s", markOK, entry.Key, leftName)
	default:
		return fmt.Sprintf("%s %s: nothing to promote %s", markWarning, entry.Key, direction)
	}
}
