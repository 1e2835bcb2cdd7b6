package completions

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/levelupgamer/lu/internal/dispatchers"
)

// Shell is a supported completion target.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Valid reports whether scripts can be generated for s.
func (s Shell) Valid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	}
	return false
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when unknown.
func RunningShell() Shell {
	shell := Shell(filepath.Base(os.Getenv("SHELL")))
	if shell.Valid() {
		return shell
	}
	return ""
}

var commandTree *dispatchers.DispatchNode

// RegisterCommandTree stores the command tree for the completion generators.
// main calls it after building the tree; the cli package cannot be imported
// from here.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTree = root
}

// GetCommandTree returns the registered command tree
func GetCommandTree() *dispatchers.DispatchNode {
	return commandTree
}

// PrintCompletions writes the completion script for shell to w.
func PrintCompletions(w io.Writer, root *dispatchers.DispatchNode, shell Shell) error {
	if root == nil {
		return fmt.Errorf("command tree not registered")
	}

	commands := ExtractCommands(root)
	var script string
	switch shell {
	case ShellBash:
		script = GenerateBash(commands)
	case ShellZsh:
		script = GenerateZsh(commands)
	case ShellFish:
		script = GenerateFish(commands)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

// SourceInstructions returns the line that loads completions into shell.
func SourceInstructions(bin string, shell Shell) string {
	switch shell {
	case ShellFish:
		return fmt.Sprintf("%s completions fish --script | source", bin)
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s --script)"`, bin, shell)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
