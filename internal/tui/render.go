package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedSecret = "••••••••"

// RenderEntries lists entries without their secrets.
func RenderEntries(entries []models.VaultEntry) string {
	if len(entries) == 0 {
		return helpStyle.Render("No entries yet. Add one with `add`.")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			fitText(e.Website, 40),
			fitText(valueOrDash(e.Username), 32),
			strconv.FormatInt(e.Version, 10),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "WEBSITE", "USERNAME", "VERSION").
		Rows(rows...).
		String()
}

// RenderEntry shows one decrypted entry. The password is masked unless
// showSecret is set.
func RenderEntry(entry models.RevealedEntry, showSecret bool) string {
	secret := maskedSecret
	if showSecret {
		secret = secretStyle.Render(entry.Password)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Website: "), entry.Website)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Username:"), valueOrDash(entry.Username))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Password:"), secret)
	fmt.Fprintf(&b, "%s %d", labelStyle.Render("Version: "), entry.Version)

	return boxStyle.Render(b.String())
}

// RenderStrength warns about a weak master passphrase. Strong ones render
// as an empty string.
func RenderStrength(strength validators.PassphraseStrength) string {
	if !strength.Weak() {
		return ""
	}
	return warningStyle.Render(fmt.Sprintf(
		"Warning: weak master passphrase (score %d/4, cracked in %s). It cannot be changed later without re-encrypting the vault.",
		strength.Score, strength.CrackTime))
}

// RenderSuccess styles a one-line confirmation.
func RenderSuccess(msg string) string {
	return successStyle.Render(msg)
}

// RenderVersion prints client build info and, if known, the server version.
func RenderVersion(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Client version:"), valueOrNA(info.BuildVersion()))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Build date:    "), valueOrNA(info.BuildDate()))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Build commit:  "), valueOrNA(info.BuildCommit()))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Server version:"), valueOrNA(serverVersion))
	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
