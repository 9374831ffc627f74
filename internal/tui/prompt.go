// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrPromptCancelled is returned when the user leaves a prompt with esc or
// ctrl+c.
var ErrPromptCancelled = errors.New("prompt cancelled")

const promptCharLimit = 1024

// Prompter asks the user for single values. On a terminal it runs a small
// Bubble Tea program per question; otherwise it reads lines from its input,
// so the client can be scripted.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
	lines       *bufio.Reader
}

// NewPrompter creates a Prompter over in and out. Prompts are interactive
// only when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Prompter{
		in:          in,
		out:         out,
		interactive: interactive,
		lines:       bufio.NewReader(in),
	}
}

// Secret asks for a value without echoing it.
func (p *Prompter) Secret(label string) (string, error) {
	return p.ask(label, true)
}

// Line asks for a value with visible input.
func (p *Prompter) Line(label string) (string, error) {
	return p.ask(label, false)
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.ask(label+" [y/N]", false)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) ask(label string, secret bool) (string, error) {
	if !p.interactive {
		return p.readLine(label)
	}

	final, err := tea.NewProgram(newPromptModel(label, secret), tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	result, ok := final.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled {
		return "", ErrPromptCancelled
	}
	return result.input.Value(), nil
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.lines.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", ErrPromptCancelled
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// promptModel is a one-field form. Enter submits; esc and ctrl+c cancel.
type promptModel struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newPromptModel(label string, secret bool) promptModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = promptCharLimit
	input.Width = 48
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()

	return promptModel{label: label, input: input}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		// leave only the question on screen, never the typed value
		return labelStyle.Render(m.label+":") + "\n"
	}
	return labelStyle.Render(m.label+":") + " " + m.input.View() + "\n" + helpStyle.Render("enter: confirm  esc: cancel")
}
