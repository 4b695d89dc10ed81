package main

import (
	"fmt"
	"strings"
)

// commandNames returns the space-separated command names.
func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every spelling of the command's flags.
func flagWords(c commandDef) string {
	var words []string
	for _, f := range c.Flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// quoteSingle escapes s for a single-quoted shell string.
func quoteSingle(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

func writeBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for notemark\n")
	b.WriteString("_notemark_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W '%s' -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	// Flag values
	b.WriteString("    case \"$prev\" in\n")
	seen := make(map[string]bool)
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] {
				continue
			}
			var reply string
			switch f.Type {
			case flagEnum:
				reply = fmt.Sprintf("COMPREPLY=($(compgen -W '%s' -- \"$cur\"))", quoteSingle(strings.Join(f.Values, " ")))
			case flagFile:
				reply = "COMPREPLY=($(compgen -f -- \"$cur\"))"
			case flagDir:
				reply = "COMPREPLY=($(compgen -d -- \"$cur\"))"
			default:
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			fmt.Fprintf(b, "        %s)\n            %s\n            return\n            ;;\n", pattern, reply)
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "help":
			fmt.Fprintf(b, "        help)\n            COMPREPLY=($(compgen -W '%s' -- \"$cur\"))\n            ;;\n", commandNames(cmds))
		case c.Name == "completion":
			b.WriteString("        completion)\n            COMPREPLY=($(compgen -W 'bash zsh fish' -- \"$cur\"))\n            ;;\n")
		case c.TakesFiles:
			fmt.Fprintf(b, "        %s)\n", c.Name)
			b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "                COMPREPLY=($(compgen -W '%s' -- \"$cur\"))\n", flagWords(c))
			b.WriteString("            else\n")
			b.WriteString("                COMPREPLY=($(compgen -f -- \"$cur\"))\n")
			b.WriteString("            fi\n            ;;\n")
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _notemark_completions notemark\n")
}

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef notemark\n\n")
	b.WriteString("_notemark() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, quoteSingle(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == "help":
			b.WriteString("        help)\n            _describe 'command' commands\n            ;;\n")
		case c.Name == "completion":
			b.WriteString("        completion)\n            _values 'shell' bash zsh fish\n            ;;\n")
		case c.TakesFiles:
			fmt.Fprintf(b, "        %s)\n            _arguments \\\n", c.Name)
			for _, f := range c.Flags {
				fmt.Fprintf(b, "                %s \\\n", zshSpec(f))
			}
			b.WriteString("                '*:note:_files'\n            ;;\n")
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_notemark \"$@\"\n")
}

// zshSpec returns the _arguments spec of a flag.
func zshSpec(f flagDef) string {
	names := "--" + f.Long
	if f.Short != "" {
		names = fmt.Sprintf("(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	}
	desc := quoteSingle(strings.NewReplacer("[", "(", "]", ")", ":", " ").Replace(f.Desc))

	var action string
	switch f.Type {
	case flagBool:
		return fmt.Sprintf("'%s[%s]'", names, desc)
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files"
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ": "
	}
	return fmt.Sprintf("'%s[%s]%s'", names, desc, action)
}

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for notemark\n\n")
	b.WriteString("function __fish_notemark_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_notemark_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	b.WriteString("complete -c notemark -f\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c notemark -n '__fish_notemark_needs_command' -a %s -d '%s'\n", c.Name, quoteSingle(c.Desc))
	}
	b.WriteString("complete -c notemark -n '__fish_notemark_using_command completion' -a 'bash zsh fish'\n")
	fmt.Fprintf(b, "complete -c notemark -n '__fish_notemark_using_command help' -a '%s'\n", commandNames(cmds))

	for _, c := range cmds {
		if !c.TakesFiles {
			continue
		}
		cond := fmt.Sprintf("'__fish_notemark_using_command %s'", c.Name)
		fmt.Fprintf(b, "complete -c notemark -n %s -F\n", cond)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c notemark -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", quoteSingle(strings.Join(f.Values, " ")))
			case flagFile, flagDir:
				line += " -r -F"
			default:
				line += " -x"
			}
			fmt.Fprintf(b, "%s -d '%s'\n", line, quoteSingle(f.Desc))
		}
	}
}
