package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Log in to the sync server and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, 0, func(ctx context.Context, rt *runtime) error {
				password, err := rootOpts.readSecret(cmd, AccountPasswordEnv, "Password: ")
				if err != nil {
					return err
				}
				if err = rt.services.SyncManager.Login(ctx, args[0], password); err != nil {
					return fmt.Errorf("login: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Logged in as %s\n", markOK, color.CyanString(args[0]))
				return nil
			})
		},
	}
}

type signupOptions struct {
	name string
}

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &signupOptions{}

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account on the sync server and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, 0, func(ctx context.Context, rt *runtime) error {
				password, err := rootOpts.readSecret(cmd, AccountPasswordEnv, "Password: ")
				if err != nil {
					return err
				}
				if err = rt.services.SyncManager.Signup(ctx, args[0], password, opts.name); err != nil {
					return fmt.Errorf("signup: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Account %s created\n", markOK, color.CyanString(args[0]))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "display name")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needSession, func(ctx context.Context, rt *runtime) error {
				rt.services.SyncManager.Logout(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "%s Logged out\n", markOK)
				return nil
			})
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account of the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needSession, func(ctx context.Context, rt *runtime) error {
				user := rt.services.SyncManager.Snapshot().User
				if user == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
					return nil
				}
				if user.Name != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), user.Email)
				return nil
			})
		},
	}
}
