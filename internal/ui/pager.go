// Package ui provides terminal output utilities including pager support.
//
// The pager command comes from --pager, config or $PAGER and is executed
// as given, the same way git and man treat theirs.
package ui

import (
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"
)

var (
	pagerDisabled bool
	pagerOverride string
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager globally (used by --no-pager).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation (used by --pager).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

func isPagerDisabled() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled
}

func getPagerOverride() string {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerOverride
}

// resolvePager picks the pager command.
//
// Precedence:
//  1. --pager=<cmd>
//  2. lu config pager
//  3. $PAGER
//  4. less -FRSX
//
// "cat" or an empty command at the chosen level means no pager (ok == false).
func resolvePager(override string, configGetter func(string) (string, bool), envGetter func(string) string) (name string, args []string, ok bool) {
	cmd := override

	if cmd == "" && configGetter != nil {
		if v, found := configGetter("pager"); found {
			cmd = v
			if strings.TrimSpace(cmd) == "" {
				return "", nil, false
			}
		}
	}

	if cmd == "" && envGetter != nil {
		cmd = envGetter("PAGER")
	}

	if cmd == "" {
		cmd = "less -FRSX"
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 || parts[0] == "cat" {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

func execPager(name string, args []string, content string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func isTerminal(out any) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
