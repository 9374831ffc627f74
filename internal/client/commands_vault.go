package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (a *App) addCommand() *cobra.Command {
	var website, username string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Encrypt and store a new credential",
		Example: "  go-pass-vault add --website example.com --username alice",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := a.valueOrPrompt(website, "Website")
			if err != nil {
				return err
			}
			user := username
			if !cmd.Flags().Changed("username") {
				if user, err = a.prompt.Line("Username"); err != nil {
					return err
				}
			}
			secret, err := a.prompt.Secret("Password")
			if err != nil {
				return err
			}

			entry, err := a.services.VaultService.Add(cmd.Context(), site, user, secret)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess(fmt.Sprintf("Added entry %d for %s.", entry.ID, entry.Website)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&website, "website", "w", "", "website the credential belongs to (prompted if empty)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username on the website (prompted if not set)")
	return cmd
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored credentials without their passwords",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.services.VaultService.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderEntries(entries))
			return nil
		},
	}
}

func (a *App) showCommand() *cobra.Command {
	var copyToClipboard, reveal bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Decrypt and show one credential",
		Example: `  go-pass-vault show 3
  go-pass-vault show 3 --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			entry, err := a.services.VaultService.Reveal(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderEntry(entry, reveal))

			if copyToClipboard {
				if err = a.clip.WriteAll(entry.Password); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess("Password copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "copy the password to the clipboard")
	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "print the password instead of masking it")
	return cmd
}

func (a *App) editCommand() *cobra.Command {
	var (
		website, username string
		newPassword       bool
		version           int64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a stored credential",
		Long: `Changes the website, username or password of an entry. Without flags every
field is prompted for; leave a field blank to keep it.

--version makes the update conditional: it fails if the entry was changed
since that version.`,
		Example: `  go-pass-vault edit 3
  go-pass-vault edit 3 --password --version 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			changes := models.RevealedEntry{ID: id, Website: website, Username: username, Version: version}

			interactive := !cmd.Flags().Changed("website") && !cmd.Flags().Changed("username") && !newPassword
			if interactive {
				if changes.Website, err = a.prompt.Line("Website (blank keeps current)"); err != nil {
					return err
				}
				if changes.Username, err = a.prompt.Line("Username (blank keeps current)"); err != nil {
					return err
				}
			}
			if interactive || newPassword {
				if changes.Password, err = a.prompt.Secret("New password (blank keeps current)"); err != nil {
					return err
				}
			}

			if changes.Website == "" && changes.Username == "" && changes.Password == "" {
				return errNothingToChange
			}

			if err = a.services.VaultService.Update(cmd.Context(), changes); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess(fmt.Sprintf("Updated entry %d.", id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&website, "website", "w", "", "new website")
	cmd.Flags().StringVarP(&username, "username", "u", "", "new username")
	cmd.Flags().BoolVarP(&newPassword, "password", "p", false, "prompt for a new password")
	cmd.Flags().Int64Var(&version, "version", 0, "expected current version (0 updates unconditionally)")
	return cmd
}

func (a *App) removeCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a stored credential",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := a.prompt.Confirm(fmt.Sprintf("Delete entry %d?", id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err = a.services.VaultService.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess(fmt.Sprintf("Deleted entry %d.", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverVersion, err := a.services.VaultService.ServerVersion(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("server version is unavailable")
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderVersion(a.info, serverVersion))
			return nil
		},
	}
}

func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidEntryID, arg)
	}
	return id, nil
}
