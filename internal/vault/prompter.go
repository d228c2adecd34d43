package vault

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/illarion/pocketvault/internal/crypto"
	"golang.org/x/term"
)

// ErrAborted means the operator backed out of a prompt. It is a normal
// outcome, not a failure.
var ErrAborted = errors.New("aborted by operator")

// Prompter is the operator interaction surface. The cmd layer supplies a
// terminal implementation; tests supply scripted doubles.
type Prompter interface {
	// Select presents options and returns the chosen index, or ErrAborted.
	Select(title string, options []string) (int, error)
	// Confirm asks a yes/no question.
	Confirm(question string) bool
	// PromptString reads one line of echoed input.
	PromptString(prompt string) (string, error)
	// PromptSecret reads a passphrase without echo. The caller owns the
	// returned secret.
	PromptSecret(prompt string) (*crypto.Secret, error)
	// Notify shows a short operator-visible message.
	Notify(message string)
}

// TerminalPrompter implements Prompter over stdin/stdout.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter bound to the process terminal.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Select prints a numbered menu and reads a choice. Entering "q" or an
// empty line backs out.
func (p *TerminalPrompter) Select(title string, options []string) (int, error) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprint(p.out, "Choice (q to cancel): ")
		line, err := p.in.ReadString('\n')
		if err != nil {
			return 0, ErrAborted
		}
		line = strings.TrimSpace(line)
		if line == "" || line == "q" {
			return 0, ErrAborted
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(p.out, "Invalid choice")
			continue
		}
		return n - 1, nil
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *TerminalPrompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// PromptString reads one echoed line.
func (p *TerminalPrompter) PromptString(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", ErrAborted
	}
	return strings.TrimSpace(line), nil
}

// PromptSecret reads a passphrase from the terminal without echoing.
func (p *TerminalPrompter) PromptSecret(prompt string) (*crypto.Secret, error) {
	fmt.Fprint(p.out, prompt)

	passphrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(p.out) // New line after passphrase

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return crypto.NewSecret(passphrase), nil
}

// Notify prints a short message.
func (p *TerminalPrompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}

// PromptSecretConfirm reads a passphrase twice through pr until both
// entries match. An empty first entry backs out with ErrAborted.
func PromptSecretConfirm(pr Prompter) (*crypto.Secret, error) {
	for {
		first, err := pr.PromptSecret("Enter passphrase: ")
		if err != nil {
			return nil, err
		}
		if first.IsEmpty() {
			first.Wipe()
			return nil, ErrAborted
		}

		second, err := pr.PromptSecret("Confirm passphrase: ")
		if err != nil {
			first.Wipe()
			return nil, err
		}

		if first.Equal(second) {
			second.Wipe()
			return first, nil
		}

		first.Wipe()
		second.Wipe()
		pr.Notify("Passphrases do not match, try again")
	}
}
