package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stigoleg/mascot-overlay/internal/config"
)

// This small tool generates shell completions and a man page from the flag
// table the binary itself parses, so the docs cannot drift from -help.

const appDescription = "A transparent, always-on-top desktop mascot that follows the pointer everywhere on screen."

var appName = config.AppName

func main() {
	if err := writeCompletions(config.Flags); err != nil {
		panic(err)
	}
	if err := writeMan(config.Flags); err != nil {
		panic(err)
	}
}

func writeCompletions(flags []config.FlagDef) error {
	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}
	files := map[string]string{
		appName + ".bash": bashCompletion(flags),
		"_" + appName:     zshCompletion(flags),
		appName + ".fish": fishCompletion(flags),
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(base, name), []byte(body), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func bashCompletion(flags []config.FlagDef) string {
	var bash strings.Builder
	bash.WriteString("_" + appName + "() {\n")
	bash.WriteString("  local cur prev opts\n")
	bash.WriteString("  COMPREPLY=()\n")
	bash.WriteString("  cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	bash.WriteString("  prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	opts := make([]string, 0, len(flags))
	for _, f := range flags {
		opts = append(opts, "-"+f.Name)
	}
	bash.WriteString("  opts=\"" + strings.Join(opts, " ") + "\"\n")
	bash.WriteString("  case \"${prev}\" in\n")
	bash.WriteString("    -config|-log)\n")
	bash.WriteString("      COMPREPLY=( $(compgen -f -- ${cur}) )\n")
	bash.WriteString("      return 0\n")
	bash.WriteString("      ;;\n")
	bash.WriteString("  esac\n")
	bash.WriteString("  if [[ ${cur} == -* ]] ; then\n")
	bash.WriteString("    COMPREPLY=( $(compgen -W \"${opts}\" -- ${cur}) )\n")
	bash.WriteString("    return 0\n")
	bash.WriteString("  fi\n")
	bash.WriteString("}\n")
	bash.WriteString("complete -F _" + appName + " " + appName + "\n")
	return bash.String()
}

func zshCompletion(flags []config.FlagDef) string {
	var zsh strings.Builder
	zsh.WriteString("#compdef " + appName + "\n")
	zsh.WriteString("_arguments ")
	parts := make([]string, 0, len(flags))
	for _, f := range flags {
		parts = append(parts, fmt.Sprintf("'%s[%s]%s'", zFlagName(f), zEscape(f.Desc), zArgSuffix(f.Arg)))
	}
	zsh.WriteString(strings.Join(parts, " ") + "\n")
	return zsh.String()
}

func zFlagName(f config.FlagDef) string {
	if f.Arg != "" {
		// zsh requires = for options with arguments
		return "-" + f.Name + "="
	}
	return "-" + f.Name
}

func zArgSuffix(arg string) string {
	if arg == "" {
		return ""
	}
	return ":value:" + strings.Trim(arg, "<>")
}

func zEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]")
	return r.Replace(s)
}

func fishCompletion(flags []config.FlagDef) string {
	var fish strings.Builder
	fish.WriteString("complete -c " + appName + " -f\n")
	for _, f := range flags {
		fish.WriteString(fishFlagLine(f))
	}
	return fish.String()
}

func fishFlagLine(f config.FlagDef) string {
	var b strings.Builder
	b.WriteString("complete -c ")
	b.WriteString(appName)
	// Go flags take a single dash, which fish calls an old-style option.
	b.WriteString(" -o ")
	b.WriteString(f.Name)
	if f.Arg != "" {
		b.WriteString(" -r")
	} else {
		b.WriteString(" -f")
	}
	b.WriteString(" -d \"")
	b.WriteString(escapeDoubleQuotes(f.Desc))
	b.WriteString("\"\n")
	return b.String()
}

func escapeDoubleQuotes(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func manPage(flags []config.FlagDef) string {
	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"mascot-overlay\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " - " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n")
	b.WriteString("[\\fIflags\\fR]\n")
	b.WriteString(".SH DESCRIPTION\n" + appDescription + "\n")
	b.WriteString(".PP\nThe content is loaded from a local web server that must be running before start. " +
		"Drag the mascot with the primary button to move it.\n")
	b.WriteString(".SH OPTIONS\n")
	for _, f := range flags {
		names := "\\-" + f.Name
		if f.Arg != "" {
			names += " " + f.Arg
		}
		b.WriteString(".TP\n\\fB" + names + "\\fR\n" + f.Desc + "\n")
	}
	b.WriteString(".SH FILES\n.TP\n\\fI$XDG_CONFIG_HOME/" + appName + "/config.toml\\fR\nSettings read before the flags; flags given explicitly win.\n")
	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nShow the mascot with the terminal status panel.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-url http://127.0.0.1:9000 \\-probe 127.0.0.1:9000\\fR\nLoad content from another port.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-headless \\-log ''\\fR\nRun without a terminal panel and without a log file.\n")
	return b.String()
}

func writeMan(flags []config.FlagDef) error {
	if err := os.MkdirAll("man", 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join("man", appName+".1"), []byte(manPage(flags)), 0o644)
}
