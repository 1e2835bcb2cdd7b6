package completions

import (
	"fmt"
	"strings"
)

func binName(commands []CommandInfo) string {
	if len(commands) == 0 || len(commands[0].Path) == 0 {
		return "lu"
	}
	return commands[0].Path[0]
}

func flagWords(cmd CommandInfo) []string {
	var out []string
	for _, f := range cmd.Flags {
		out = append(out, f.Names...)
	}
	return out
}

// funcName turns a command path into a shell identifier: lu cart add -> lu_cart_add.
func funcName(path []string) string {
	return strings.ReplaceAll(strings.Join(path, "_"), "-", "_")
}

// GenerateBash completes subcommands and flags for the command named by the
// non-flag words typed so far.
func GenerateBash(commands []CommandInfo) string {
	bin := binName(commands)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "_%s_completions() {\n", bin)
	b.WriteString("    local cur cmdpath word words\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    cmdpath=%q\n", bin)
	b.WriteString("    for word in \"${COMP_WORDS[@]:1:COMP_CWORD-1}\"; do\n")
	b.WriteString("        case \"$word\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) cmdpath=\"$cmdpath $word\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$cmdpath\" in\n")
	for _, cmd := range commands {
		words := append(append([]string{}, cmd.Subcommands...), flagWords(cmd)...)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %q) words=%q ;;\n", strings.Join(cmd.Path, " "), strings.Join(words, " "))
	}
	b.WriteString("        *) words=\"\" ;;\n")
	b.WriteString("    esac\n\n")
	b.WriteString("    COMPREPLY=($(compgen -W \"$words\" -- \"$cur\"))\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F _%s_completions %s\n", bin, bin)
	return b.String()
}

// GenerateZsh describes subcommands with their summaries.
func GenerateZsh(commands []CommandInfo) string {
	bin := binName(commands)
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	for _, cmd := range commands {
		if len(cmd.Subcommands) == 0 {
			continue
		}
		fmt.Fprintf(&b, "_%s_commands() {\n", funcName(cmd.Path))
		b.WriteString("    local -a cmds\n")
		b.WriteString("    cmds=(\n")
		for _, sub := range cmd.Subcommands {
			summary := ""
			if child := FindCommand(commands, append(append([]string{}, cmd.Path...), sub)); child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "        %s\n", quote(sub+":"+summary))
		}
		b.WriteString("    )\n")
		b.WriteString("    _describe 'command' cmds\n")
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    local cmdpath w\n")
	fmt.Fprintf(&b, "    cmdpath=%q\n", bin)
	b.WriteString("    for w in \"${words[@]:1:CURRENT-2}\"; do\n")
	b.WriteString("        [[ $w == -* ]] || cmdpath=\"$cmdpath $w\"\n")
	b.WriteString("    done\n\n")
	b.WriteString("    if [[ $PREFIX == -* ]]; then\n")
	b.WriteString("        case \"$cmdpath\" in\n")
	for _, cmd := range commands {
		if flags := flagWords(cmd); len(flags) > 0 {
			fmt.Fprintf(&b, "            %q) compadd -- %s ;;\n", strings.Join(cmd.Path, " "), strings.Join(flags, " "))
		}
	}
	b.WriteString("        esac\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmdpath\" in\n")
	for _, cmd := range commands {
		if len(cmd.Subcommands) > 0 {
			fmt.Fprintf(&b, "        %q) _%s_commands ;;\n", strings.Join(cmd.Path, " "), funcName(cmd.Path))
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", bin, bin)
	return b.String()
}

// GenerateFish registers one completion per subcommand and flag.
func GenerateFish(commands []CommandInfo) string {
	bin := binName(commands)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, cmd := range commands {
		cond := fishCondition(cmd.Path[1:])

		for _, sub := range cmd.Subcommands {
			child := FindCommand(commands, append(append([]string{}, cmd.Path...), sub))
			summary := ""
			if child != nil {
				summary = child.Summary
			}
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n", bin, quote(cond), quote(sub), quote(summary))
		}

		for _, f := range cmd.Flags {
			var opts []string
			for _, name := range f.Names {
				switch {
				case strings.HasPrefix(name, "--"):
					opts = append(opts, "-l "+strings.TrimPrefix(name, "--"))
				case strings.HasPrefix(name, "-"):
					opts = append(opts, "-s "+strings.TrimPrefix(name, "-"))
				}
			}
			if f.HasValue {
				opts = append(opts, "-r")
			}
			line := fmt.Sprintf("complete -c %s %s -d %s", bin, strings.Join(opts, " "), quote(f.Description))
			if len(cmd.Path) > 1 {
				line = fmt.Sprintf("complete -c %s -n %s %s -d %s", bin, quote(cond), strings.Join(opts, " "), quote(f.Description))
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// fishCondition matches when the given subcommands have been typed, or when
// none has for the root.
func fishCondition(path []string) string {
	if len(path) == 0 {
		return "__fish_use_subcommand"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = "__fish_seen_subcommand_from " + p
	}
	return strings.Join(parts, "; and ")
}
