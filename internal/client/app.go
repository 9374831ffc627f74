package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

const appName = "go-pass-vault"

// connectFunc builds the client services for one command run. The returned
// close func releases the local key store.
type connectFunc func(ctx context.Context, configPath string, logger *logger.Logger) (*service.ClientServices, func() error, error)

type App struct {
	info   models.AppBuildInfo
	prompt Prompter
	clip   Clipboard
	out    io.Writer
	errOut io.Writer

	connect    connectFunc
	configPath string
	services   *service.ClientServices
	closeStore func() error

	logger *logger.Logger
}

// NewApp creates the CLI application. info is shown by `version`.
func NewApp(info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if logger == nil {
		return nil, errNilLogger
	}

	return &App{
		info:    info,
		prompt:  tui.NewPrompter(os.Stdin, os.Stderr),
		clip:    systemClipboard{},
		out:     os.Stdout,
		errOut:  os.Stderr,
		connect: connectServices,
		logger:  logger,
	}, nil
}

// Run executes args and prints a readable error on failure.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if a.closeStore != nil {
		err = errors.Join(err, a.closeStore())
		a.closeStore = nil
	}
	if err != nil {
		a.logger.Err(err).Msg("command failed")
		fmt.Fprintln(a.errOut, tui.RenderError(err))
	}
	return err
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Zero-knowledge password vault client",
		Long:          "Stores website credentials on a vault server. Passwords are encrypted on this device with a key derived from your master passphrase; the server only ever sees ciphertext.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.services != nil || !needsServices(cmd) {
				return nil
			}

			services, closeStore, err := a.connect(cmd.Context(), a.configPath, a.logger)
			if err != nil {
				return err
			}
			a.services, a.closeStore = services, closeStore
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a JSON config file (overrides CONFIG)")
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.addCommand(),
		a.listCommand(),
		a.showCommand(),
		a.editCommand(),
		a.removeCommand(),
		a.versionCommand(),
	)

	return root
}

// needsServices is false for cobra's own help and completion commands.
func needsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion":
			return false
		}
	}
	return true
}

// connectServices reads the client config and wires the local key store,
// the HTTP adapter and the client services.
func connectServices(ctx context.Context, configPath string, log *logger.Logger) (*service.ClientServices, func() error, error) {
	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("client config: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("local key store: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("server adapter: %w", err), storages.Close())
	}

	services, err := service.NewClientServices(storages.SessionRepository, serverAdapter, cfg.App, log)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("client services: %w", err), storages.Close())
	}

	return services, storages.Close, nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
