package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewProjectCommand creates the project command group.
func NewProjectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(newProjectCreateCommand(rootOpts))
	cmd.AddCommand(newProjectListCommand(rootOpts))
	cmd.AddCommand(newProjectDeleteCommand(rootOpts))

	return cmd
}

func newProjectCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				project, err := rt.services.VaultService.CreateProject(ctx, args[0], description)
				if errors.Is(err, service.ErrProjectAlreadyExists) {
					return fmt.Errorf("project %q already exists", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Created project %s (%s)\n", markOK, color.CyanString(project.Name), project.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "project description")

	return cmd
}

func newProjectListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				projects, err := rt.services.VaultService.ListProjects(ctx)
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects. Create one with `envkeeper project create <name>`.")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tID\tDESCRIPTION")
				for _, p := range projects {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.ID, p.Description)
				}
				return tw.Flush()
			})
		},
	}
}

func newProjectDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project>",
		Short: "Delete a project with all its environments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				project, err := rt.project(ctx, args[0])
				if err != nil {
					return err
				}
				if err = rt.services.VaultService.DeleteProject(ctx, project.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted project %s\n", markOK, project.Name)
				return nil
			})
		},
	}
}

// NewEnvCommand creates the env command group.
func NewEnvCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the environments of a project",
	}

	cmd.AddCommand(newEnvCreateCommand(rootOpts))
	cmd.AddCommand(newEnvListCommand(rootOpts))
	cmd.AddCommand(newEnvDeleteCommand(rootOpts))

	return cmd
}

func newEnvCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var envType string

	cmd := &cobra.Command{
		Use:   "create <project> <name>",
		Short: "Create an environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				project, err := rt.project(ctx, args[0])
				if err != nil {
					return err
				}
				if envType == "" {
					envType = string(models.ParseEnvironmentType(args[1]))
				}
				env, err := rt.services.VaultService.CreateEnvironment(ctx, project.ID, args[1], envType)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Created environment %s (%s) in %s\n", markOK, color.CyanString(env.Name), env.Type, project.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&envType, "type", "", "development, staging, production or custom (guessed from the name)")

	return cmd
}

func newEnvListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project>",
		Short: "List the environments of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				project, err := rt.project(ctx, args[0])
				if err != nil {
					return err
				}
				envs, err := rt.services.VaultService.ListEnvironments(ctx, project.ID)
				if err != nil {
					return err
				}
				if len(envs) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Project %s has no environments.\n", project.Name)
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tTYPE\tID")
				for _, e := range envs {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Type, e.ID)
				}
				return tw.Flush()
			})
		},
	}
}

func newEnvDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project> <name>",
		Short: "Delete an environment with its variables",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				if err = rt.services.VaultService.DeleteEnvironment(ctx, env.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted environment %s\n", markOK, env.Name)
				return nil
			})
		},
	}
}

// NewVarCommand creates the var command group.
func NewVarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "var",
		Aliases: []string{"vars"},
		Short:   "Manage the variables of an environment",
	}

	cmd.AddCommand(newVarSetCommand(rootOpts))
	cmd.AddCommand(newVarUnsetCommand(rootOpts))
	cmd.AddCommand(newVarListCommand(rootOpts))

	return cmd
}

func newVarSetCommand(rootOpts *RootOptions) *cobra.Command {
	var secret bool

	cmd := &cobra.Command{
		Use:   "set <project> <env> KEY=VALUE...",
		Short: "Create or overwrite variables",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([][2]string, 0, len(args)-2)
			for _, arg := range args[2:] {
				key, value, found := strings.Cut(arg, "=")
				if !found || strings.TrimSpace(key) == "" {
					return fmt.Errorf("invalid assignment %q, expected KEY=VALUE", arg)
				}
				pairs = append(pairs, [2]string{strings.TrimSpace(key), value})
			}

			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				for _, kv := range pairs {
					if _, err = rt.services.VaultService.SetVariable(ctx, env.ID, kv[0], kv[1], secret); err != nil {
						return fmt.Errorf("set %s: %w", kv[0], err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s set in %s\n", markOK, kv[0], env.Name)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&secret, "secret", false, "mask the values in listings and diffs")

	return cmd
}

func newVarUnsetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <project> <env> KEY...",
		Short: "Delete variables",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				for _, key := range args[2:] {
					err = rt.services.VaultService.DeleteVariable(ctx, env.ID, key)
					if errors.Is(err, store.ErrRecordNotFound) {
						return fmt.Errorf("%s is not set in %s", key, env.Name)
					}
					if err != nil {
						return fmt.Errorf("unset %s: %w", key, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s removed from %s\n", markOK, key, env.Name)
				}
				return nil
			})
		},
	}
}

func newVarListCommand(rootOpts *RootOptions) *cobra.Command {
	var showValues bool

	cmd := &cobra.Command{
		Use:   "list <project> <env>",
		Short: "List the variables of an environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				records, err := rt.services.VaultService.ListRecords(ctx, env.ID)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No variables in %s.\n", env.Name)
					return nil
				}
				for _, r := range records {
					value := r.Value
					if r.Secret && !showValues {
						value = maskedValue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", r.Key, value)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&showValues, "show-values", false, "print secret values in clear text")

	return cmd
}
