package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/levelupgamer/lu/internal/ui"
	"github.com/levelupgamer/lu/internal/ui/style"
)

// helpPager shows help text; replaced in tests.
var helpPager = func(content string) {
	ui.NewWriter().Pager(content)
}

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"home":               1,
	"catalog":            2,
	"catalog categories": 3,
	"product show":       4,
	"review add":         5,
	"review avg":         6,
	"catalog seed":       7,

	"cart list":      1,
	"cart add":       2,
	"cart remove":    3,
	"cart clear":     4,
	"order checkout": 5,
	"order list":     6,
	"order show":     7,
	"order status":   8,

	"events list":   1,
	"events show":   2,
	"events add":    3,
	"events update": 4,
	"events delete": 5,

	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,

	"theme list": 1,
	"theme set":  2,

	"version": 1,
	"logs":    2,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// collectCommands gathers every runnable node below node, including groups
// that have their own action.
func collectCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
	}

	for _, child := range node.Children {
		collectCommands(child, out)
	}
}

func displayName(node *DispatchNode) string {
	return strings.Join(node.Path[1:], " ")
}

func sortByDisplayOrder(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI, nameJ := displayName(nodes[i]), displayName(nodes[j])
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		switch {
		case hasI && hasJ:
			return orderI < orderJ
		case hasI:
			return true
		case hasJ:
			return false
		}
		return nameI < nameJ
	})
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		if node == root {
			helpPager(rootHelp(root))
		} else {
			helpPager(nodeHelp(node, root))
		}
		return nil
	}
}

func rootHelp(root *DispatchNode) string {
	var out bytes.Buffer

	fmt.Fprintf(&out, "%s - %s\n\n", root.Name, root.Summary)

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(root.Usage))
	out.WriteString("\n\n")

	grouped := make(map[CommandCategory][]*DispatchNode)

	var commands []*DispatchNode
	for _, child := range root.Children {
		collectCommands(child, &commands)
	}

	for _, cmd := range commands {
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		out.WriteString(cat.String())
		out.WriteString("\n")

		sortByDisplayOrder(cmds)

		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-20s", displayName(cmd))), cmd.Summary)
		}
		out.WriteString("\n")
	}

	if len(root.Flags) > 0 {
		out.WriteString("GLOBAL FLAGS\n")
		writeFlags(&out, root.Flags)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
	return out.String()
}

func nodeHelp(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(node.Usage))
	out.WriteString("\n\n")

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), a.Description)
		}
		out.WriteString("\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortByDisplayOrder(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		out.WriteString("FLAGS\n")
		writeFlags(&out, node.Flags)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + "=" + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
}
