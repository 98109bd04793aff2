package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	// MasterPasswordEnv holds the vault master password for scripted use.
	MasterPasswordEnv = "ENVKEEPER_MASTER_PASSWORD"
	// AccountPasswordEnv holds the sync server account password.
	AccountPasswordEnv = "ENVKEEPER_PASSWORD"
)

var errEmptySecret = errors.New("no password provided")

// needs selects what a command requires before it runs.
type needs int

const (
	needVault needs = 1 << iota
	needSession
)

type runtimeOpener func(ctx context.Context, opts *RootOptions) (*runtime, error)

// runtime is everything a command works with. It lives for one command.
type runtime struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
}

func openRuntime(ctx context.Context, opts *RootOptions) (*runtime, error) {
	cfg, err := config.GetClientConfig(opts.overrides())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger("envkeeper", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return &runtime{
		cfg:      cfg,
		log:      log,
		storages: storages,
		services: service.NewClientServices(storages, serverAdapter, log),
	}, nil
}

func (r *runtime) Close() {
	r.services.VaultService.Lock()
	if err := r.storages.Close(); err != nil {
		r.log.Err(err).Str("func", "*runtime.Close").Msg("error closing storages")
	}
}

func (o *RootOptions) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		JSONFilePath: o.ConfigPath,
		Adapter:      config.Adapter{HTTPAddress: o.Server},
		Storage: config.Storage{
			DB:      config.DB{DSN: o.DB},
			Session: config.Session{Path: o.SessionPath},
		},
	}
}

// run opens the runtime, satisfies need and calls fn.
func (o *RootOptions) run(cmd *cobra.Command, need needs, fn func(ctx context.Context, rt *runtime) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := o.open(ctx, o)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx = rt.log.WithContext(ctx)

	if need&needVault != 0 {
		password, err := o.readSecret(cmd, MasterPasswordEnv, "Master password: ")
		if err != nil {
			return err
		}
		if err = rt.unlock(ctx, password); err != nil {
			return err
		}
	}
	if need&needSession != 0 {
		rt.services.SyncManager.RestoreSession(ctx)
	}

	return fn(ctx, rt)
}

func (r *runtime) unlock(ctx context.Context, password string) error {
	err := r.services.VaultService.Unlock(ctx, password)
	if errors.Is(err, service.ErrWrongPassword) {
		return errors.New("wrong master password")
	}
	if err != nil {
		return fmt.Errorf("unlock vault: %w", err)
	}
	return nil
}

func (r *runtime) project(ctx context.Context, idOrName string) (models.Project, error) {
	project, err := r.services.VaultService.FindProject(ctx, idOrName)
	if errors.Is(err, store.ErrProjectNotFound) {
		return models.Project{}, fmt.Errorf("project %q not found", idOrName)
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

// environment resolves "<project> <env>" arguments.
func (r *runtime) environment(ctx context.Context, projectName, environmentName string) (models.Environment, error) {
	env, err := r.services.VaultService.FindEnvironment(ctx, projectName, environmentName)
	switch {
	case errors.Is(err, store.ErrProjectNotFound):
		return models.Environment{}, fmt.Errorf("project %q not found", projectName)
	case errors.Is(err, store.ErrEnvironmentNotFound):
		return models.Environment{}, fmt.Errorf("environment %q not found in project %q", environmentName, projectName)
	case err != nil:
		return models.Environment{}, fmt.Errorf("find environment: %w", err)
	}
	return env, nil
}

// readSecret takes the secret from envName, the terminal (without echo) or
// the next line of a piped stdin, in that order.
func (o *RootOptions) readSecret(cmd *cobra.Command, envName, prompt string) (string, error) {
	if v := os.Getenv(envName); v != "" {
		return v, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		if len(b) == 0 {
			return "", errEmptySecret
		}
		return string(b), nil
	}

	if o.stdin == nil {
		o.stdin = bufio.NewReader(in)
	}
	line, err := o.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("%w: set %s or pipe it on stdin", errEmptySecret, envName)
	}
	return line, nil
}
