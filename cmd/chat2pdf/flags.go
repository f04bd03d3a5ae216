package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds PDF metadata flags.
type documentFlags struct {
	title   string
	author  string
	subject string
}

// logFlags holds logging flags.
type logFlags struct {
	level  string
	format string
	file   string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	theme    string
	themeDir string
	document documentFlags
	log      logFlags
	version  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "PDF title")
	fs.StringVar(&f.author, "author", "", "PDF author")
	fs.StringVar(&f.subject, "subject", "", "PDF subject (\"auto\" = today)")
}

// addLogFlags adds logging flags to a FlagSet.
func addLogFlags(fs *flag.FlagSet, f *logFlags) {
	fs.StringVar(&f.level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.format, "log-format", "", "log format: console, json")
	fs.StringVar(&f.file, "log-file", "", "rotated JSON log file")
}

// parseConvertFlags parses flags and returns positional args.
// Usage goes to usage when parsing fails or --help is given.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("chat2pdf", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (\"-\" = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file conversion timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.theme, "theme", "", "built-in theme name or YAML theme file")
	fs.StringVar(&f.themeDir, "theme-dir", "", "directory of named themes searched before built-ins")
	fs.BoolVar(&f.version, "version", false, "show version information")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addLogFlags(fs, &f.log)

	fs.Usage = func() { printUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
