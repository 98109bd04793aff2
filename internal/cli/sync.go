package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/spf13/cobra"
)

// AccountMasterPasswordEnv holds the master password of the vault already
// published by the account, used by sync --adopt-key.
const AccountMasterPasswordEnv = "ENVKEEPER_ACCOUNT_MASTER_PASSWORD"

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the sync state and the number of unsynced projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needSession, func(ctx context.Context, rt *runtime) error {
				rt.services.SyncManager.RefreshStatus(ctx)
				printSnapshot(cmd.OutOrStdout(), rt.services.SyncManager.Snapshot())
				return nil
			})
		},
	}
}

type syncOptions struct {
	adoptKey bool
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push local changes and pull remote ones",
		Long: `Push dirty projects to the sync server and pull projects changed
elsewhere. Projects changed on both sides become conflicts.

The first sync publishes the vault key of this device. A device whose vault
was created separately must adopt the published key with --adopt-key; it
asks for the master password of the account vault.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault|needSession, func(ctx context.Context, rt *runtime) error {
				if opts.adoptKey {
					if err := rootOpts.adoptVaultKey(ctx, cmd, rt); err != nil {
						return err
					}
				}

				outcome, err := rt.services.SyncManager.Sync(ctx)
				switch {
				case errors.Is(err, service.ErrNotAuthenticated):
					return errors.New("not logged in, run `envkeeper login <email>` first")
				case errors.Is(err, service.ErrVaultKeyMismatch):
					return errors.New("this vault uses a different key than the account, rerun with --adopt-key")
				case errors.Is(err, service.ErrSync):
					printOutcome(cmd.OutOrStdout(), outcome)
					return err
				case err != nil:
					return err
				}

				printOutcome(cmd.OutOrStdout(), outcome)
				if outcome.Conflicts > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s Run `envkeeper conflicts` to review them\n", markWarning)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s In sync\n", markOK)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&opts.adoptKey, "adopt-key", false, "re-encrypt the vault with the key published by the account")

	return cmd
}

func (o *RootOptions) adoptVaultKey(ctx context.Context, cmd *cobra.Command, rt *runtime) error {
	if !rt.services.SyncManager.Connected() {
		return errors.New("not logged in, run `envkeeper login <email>` first")
	}

	key, err := rt.services.RemoteSync.RemoteVaultKey(ctx)
	if errors.Is(err, store.ErrBlobNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "The account has no vault key yet, this vault's key will be published")
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetch account vault key: %w", err)
	}

	password, err := o.readSecret(cmd, AccountMasterPasswordEnv, "Master password of the account vault: ")
	if err != nil {
		return err
	}
	err = rt.services.VaultService.AdoptVaultKey(ctx, key, password)
	if errors.Is(err, service.ErrWrongPassword) {
		return errors.New("wrong master password for the account vault")
	}
	if err != nil {
		return fmt.Errorf("adopt vault key: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Vault re-encrypted with the account key\n", markOK)
	return nil
}

// syncQuietly fills the in-memory conflicts and history of this process.
func syncQuietly(ctx context.Context, rt *runtime) error {
	_, err := rt.services.SyncManager.Sync(ctx)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return errors.New("not logged in, run `envkeeper login <email>` first")
	case errors.Is(err, service.ErrSync):
		// Partial failures still leave conflicts and history in place.
		return nil
	default:
		return err
	}
}

func projectNames(ctx context.Context, rt *runtime) func(id string) string {
	names := map[string]string{}
	if projects, err := rt.services.VaultService.ListProjects(ctx); err == nil {
		for _, p := range projects {
			names[p.ID] = p.Name
		}
	}
	return func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return id
	}
}

// NewConflictsCommand creates the conflicts command.
func NewConflictsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Sync and list the projects changed on both sides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault|needSession, func(ctx context.Context, rt *runtime) error {
				if err := syncQuietly(ctx, rt); err != nil {
					return err
				}
				printConflicts(cmd.OutOrStdout(), rt.services.SyncManager.Snapshot().Conflicts, projectNames(ctx, rt))
				return nil
			})
		},
	}
}

type resolveOptions struct {
	dataFile string
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <conflict-id|project> <local|remote|both|merge>",
		Short: "Resolve a sync conflict",
		Long: `Resolve the open conflict of a project:

  local   overwrite the server copy with the local project
  remote  replace the local project with the server copy
  both    keep the local copy as a new project and take the server copy
  merge   upload the project snapshot from --data-file (local without it)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolution, ok := models.ParseConflictResolution(args[1])
			if !ok {
				return fmt.Errorf("unknown resolution %q, use local, remote, both or merge", args[1])
			}

			var data *string
			if opts.dataFile != "" {
				if resolution != models.Merge {
					return errors.New("--data-file is only used with merge")
				}
				b, err := os.ReadFile(opts.dataFile)
				if err != nil {
					return fmt.Errorf("read merged data: %w", err)
				}
				s := string(b)
				data = &s
			}

			return rootOpts.run(cmd, needVault|needSession, func(ctx context.Context, rt *runtime) error {
				if err := syncQuietly(ctx, rt); err != nil {
					return err
				}

				conflictID, err := findConflictID(ctx, rt, args[0])
				if err != nil {
					return err
				}
				if err = rt.services.SyncManager.ResolveConflict(ctx, conflictID, resolution, data); err != nil {
					return fmt.Errorf("resolve conflict: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s Conflict resolved (%s)\n", markOK, resolution)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.dataFile, "data-file", "", "merged project snapshot (JSON) for merge")

	return cmd
}

// findConflictID accepts a conflict ID or the ID or name of the project in
// conflict.
func findConflictID(ctx context.Context, rt *runtime, ref string) (string, error) {
	conflicts := rt.services.SyncManager.Snapshot().Conflicts
	for _, c := range conflicts {
		if c.ID == ref {
			return c.ID, nil
		}
	}

	project, err := rt.project(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("no conflict %q: %w", ref, err)
	}
	for _, c := range conflicts {
		if c.ProjectID == project.ID {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("project %q has no open conflict", project.Name)
}

type historyOptions struct {
	limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Sync and show the sync events, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault|needSession, func(ctx context.Context, rt *runtime) error {
				if err := syncQuietly(ctx, rt); err != nil {
					return err
				}
				rt.services.SyncManager.RefreshHistory(ctx, opts.limit)
				printHistory(cmd.OutOrStdout(), rt.services.SyncManager.Snapshot().History)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&opts.limit, "limit", service.DefaultHistoryLimit, "maximum number of events")

	return cmd
}
