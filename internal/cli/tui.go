package cli

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/internal/client"
	"github.com/MKhiriev/go-env-keeper/internal/tui"
	"github.com/MKhiriev/go-env-keeper/internal/workers"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command. It is also what a bare envkeeper
// invocation runs.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [<project> <left-env> <right-env>]",
		Short: "Open the interactive diff viewer",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return cobra.ExactArgs(3)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, 0, func(ctx context.Context, rt *runtime) error {
				var start tui.Selection
				if len(args) == 3 {
					left, right, err := environmentPair(ctx, rt, args[0], args[1], args[2])
					if err != nil {
						return err
					}
					project, err := rt.project(ctx, args[0])
					if err != nil {
						return err
					}
					start = tui.Selection{Project: project, Left: left, Right: right}
				}

				ui, err := tui.New(rt.services, rootOpts.buildInfo, rt.log)
				if err != nil {
					return err
				}
				bgWorkers := workers.NewClientWorkers(rt.services, rt.cfg.Workers, rt.log)

				app, err := client.NewApp(rt.services, ui, bgWorkers, start, rt.log)
				if err != nil {
					return err
				}
				return app.Run()
			})
		},
	}
}
