package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/mascot-overlay/internal/ui"
	"github.com/stigoleg/mascot-overlay/internal/util"
)

// ErrVersion is returned by ParseFlags when -version was given.
var ErrVersion = errors.New("version requested")

// FlagDef documents one command-line flag.
type FlagDef struct {
	Name string
	Arg  string
	Desc string
}

// Flags lists every flag ParseFlags accepts, in help order.
var Flags = []FlagDef{
	{Name: "config", Arg: "<path>", Desc: "Config file (TOML); defaults to the user config directory"},
	{Name: "title", Arg: "<string>", Desc: "Window title"},
	{Name: "url", Arg: "<url>", Desc: "Content URL to load"},
	{Name: "probe", Arg: "<host:port>", Desc: "Address that must accept TCP connections before start"},
	{Name: "x", Arg: "<int>", Desc: "Initial window left edge in screen pixels"},
	{Name: "y", Arg: "<int>", Desc: "Initial window top edge in screen pixels"},
	{Name: "width", Arg: "<int>", Desc: "Window width"},
	{Name: "height", Arg: "<int>", Desc: "Window height"},
	{Name: "scale", Arg: "<float>", Desc: "Display scale factor applied to the drag threshold and content coordinates"},
	{Name: "poll", Arg: "<duration>", Desc: "Global cursor polling interval (e.g. \"16ms\" or \"16\")"},
	{Name: "log", Arg: "<path>", Desc: "Log file; empty disables logging"},
	{Name: "headless", Arg: "", Desc: "Run without the terminal status panel"},
	{Name: "debug", Arg: "", Desc: "Enable web view developer tools"},
	{Name: "version", Arg: "", Desc: "Show version information"},
	{Name: "help", Arg: "", Desc: "Show help message"},
}

func describe(name string) string {
	for _, f := range Flags {
		if f.Name == name {
			return f.Desc
		}
	}
	return ""
}

// ParseFlags merges defaults, the config file and args (without the program
// name). Flags given explicitly win over the file. It returns flag.ErrHelp
// for -help and ErrVersion for -version.
func ParseFlags(args []string, out io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	set := Defaults()
	configPath := fs.String("config", DefaultPath(), describe("config"))
	fs.StringVar(&set.Title, "title", set.Title, describe("title"))
	fs.StringVar(&set.URL, "url", set.URL, describe("url"))
	fs.StringVar(&set.Probe, "probe", set.Probe, describe("probe"))
	fs.IntVar(&set.X, "x", set.X, describe("x"))
	fs.IntVar(&set.Y, "y", set.Y, describe("y"))
	fs.IntVar(&set.Width, "width", set.Width, describe("width"))
	fs.IntVar(&set.Height, "height", set.Height, describe("height"))
	fs.Float64Var(&set.Scale, "scale", set.Scale, describe("scale"))
	poll := fs.String("poll", "", describe("poll"))
	fs.StringVar(&set.LogFile, "log", set.LogFile, describe("log"))
	fs.BoolVar(&set.Headless, "headless", false, describe("headless"))
	fs.BoolVar(&set.Debug, "debug", false, describe("debug"))
	showVersion := fs.Bool("version", false, describe("version"))
	fs.BoolVar(showVersion, "v", false, describe("version"))

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(out, Usage())
		}
		return nil, err
	}
	if *showVersion {
		return nil, ErrVersion
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := Defaults()
	if err := cfg.LoadFile(*configPath, explicit["config"]); err != nil {
		return nil, err
	}

	for name := range explicit {
		switch name {
		case "title":
			cfg.Title = set.Title
		case "url":
			cfg.URL = set.URL
		case "probe":
			cfg.Probe = set.Probe
		case "x":
			cfg.X = set.X
		case "y":
			cfg.Y = set.Y
		case "width":
			cfg.Width = set.Width
		case "height":
			cfg.Height = set.Height
		case "scale":
			cfg.Scale = set.Scale
		case "log":
			cfg.LogFile = set.LogFile
		case "headless":
			cfg.Headless = set.Headless
		case "debug":
			cfg.Debug = set.Debug
		case "poll":
			d, err := util.ParseDuration(*poll)
			if err != nil {
				return nil, err
			}
			cfg.Poll = d
			cfg.PollText = *poll
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Usage renders the flag help.
func Usage() string {
	var b strings.Builder
	b.WriteString(ui.Current.Title.Render("Mascot overlay"))
	b.WriteString("\n\n")
	b.WriteString(ui.Current.Value.Render("Usage: " + AppName + " [flags]"))
	b.WriteString("\n\n")

	width := 0
	for _, f := range Flags {
		if l := len(flagSpec(f)); l > width {
			width = l
		}
	}
	for _, f := range Flags {
		form := flagSpec(f)
		b.WriteString("  ")
		b.WriteString(ui.Current.HelpKey.Render(form + strings.Repeat(" ", width-len(form))))
		b.WriteString("  ")
		b.WriteString(ui.Current.HelpDesc.Render(f.Desc))
		b.WriteString("\n")
	}
	return ui.Current.Help.Render(b.String()) + "\n"
}

func flagSpec(f FlagDef) string {
	if f.Arg == "" {
		return "-" + f.Name
	}
	return "-" + f.Name + " " + f.Arg
}

// FormatError renders a configuration error for the terminal. Errors whose
// text has a blank-line separated explanation get a bordered box.
func FormatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		errorBox := ui.Current.Help.
			BorderForeground(lipgloss.Color("#FF4040"))

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040")).
			Render(parts[0])

		details := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Render(parts[1])

		return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
	}
	return ui.Current.Error.Render(msg)
}

// VersionString is printed for -version.
func VersionString(version string) string {
	return fmt.Sprintf("Mascot Overlay Version: %s", version)
}
