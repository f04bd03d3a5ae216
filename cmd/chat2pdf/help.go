package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chat2pdf <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert chat-assistant Markdown to paginated PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or \"-\" for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file, directory, or \"-\" for stdout")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-file timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           PDF title")
	fmt.Fprintln(w, "      --author <s>          PDF author")
	fmt.Fprintln(w, "      --subject <s>         Subject: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, long, stamp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --theme <name|path>   Built-in theme (default, ocean, slate) or YAML file")
	fmt.Fprintln(w, "      --theme-dir <dir>     Directory with themes/<name>.yaml, searched first")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      console, json")
	fmt.Fprintln(w, "      --log-file <path>     Rotated JSON log file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version information")
}
