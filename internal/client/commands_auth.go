package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

func (a *App) registerCommand() *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and set your master passphrase",
		Long: `Creates an account on the vault server and logs in.

The login password authenticates you to the server. The master passphrase
never leaves this device: it derives the key that encrypts your entries and
cannot be recovered if you forget it.`,
		Example: "  go-pass-vault register --username alice --email alice@example.com",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := a.valueOrPrompt(username, "Username")
			if err != nil {
				return err
			}
			mail, err := a.valueOrPrompt(email, "Email")
			if err != nil {
				return err
			}
			password, err := a.prompt.Secret("Login password")
			if err != nil {
				return err
			}
			passphrase, err := a.newPassphrase()
			if err != nil {
				return err
			}

			strength, err := a.services.AuthService.Register(cmd.Context(), name, mail, password, passphrase)
			if err != nil {
				return err
			}

			if warning := tui.RenderStrength(strength); warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), warning)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess("Registered and logged in as "+name+"."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username (prompted if empty)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted if empty)")
	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Log in and unlock the vault on this device",
		Example: "  go-pass-vault login --email alice@example.com",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mail, err := a.valueOrPrompt(email, "Email")
			if err != nil {
				return err
			}
			password, err := a.prompt.Secret("Login password")
			if err != nil {
				return err
			}
			passphrase, err := a.prompt.Secret("Master passphrase")
			if err != nil {
				return err
			}

			if err = a.services.AuthService.Login(cmd.Context(), mail, password, passphrase); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess("Logged in."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted if empty)")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session and vault key stored on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess("Logged out."))
			return nil
		},
	}
}

// newPassphrase asks for the master passphrase twice.
func (a *App) newPassphrase() (string, error) {
	passphrase, err := a.prompt.Secret("Master passphrase")
	if err != nil {
		return "", err
	}

	repeated, err := a.prompt.Secret("Repeat master passphrase")
	if err != nil {
		return "", err
	}
	if passphrase != repeated {
		return "", errPassphraseMismatch
	}
	return passphrase, nil
}

func (a *App) valueOrPrompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.prompt.Line(label)
}
