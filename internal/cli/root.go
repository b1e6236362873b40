package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/dbgrep/internal/export"
	"github.com/vvka-141/dbgrep/internal/format"
	"github.com/vvka-141/dbgrep/internal/logging"
	"github.com/vvka-141/dbgrep/internal/scan"
	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

var rootCmd = &cobra.Command{
	Use:   "dbgrep <path> <keyword>",
	Short: "Search text files and SQLite databases for a keyword",
	Long: `dbgrep recursively scans text files and SQLite database files for a keyword
or regular-expression pattern, printing matching lines with the match
highlighted and annotated with its source location.

Text matches are prefixed [file:line]; database matches are prefixed
[file:table.column:rowN]. Matches go to stdout, diagnostics to stderr.

Recognized extensions: .log .txt .sql .json .csv .py .db .sqlite .sqlite3
A single-file path is always scanned, whatever its extension.

Exit Codes:
  0  - Scan completed (matches found or none)
  1  - Missing path, invalid pattern, or any other error

Examples:
  # Case-insensitive keyword search over a directory
  dbgrep /var/log error

  # Restrict a directory scan to one extension
  dbgrep ./backups truncate --file-type .sql

  # Regular-expression search with two context lines
  dbgrep ./app 'timeout=[0-9]+' --regex --context-lines 2

  # Export the results alongside the display output
  dbgrep ./data error --export results.csv`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runSearch,
}

type searchFlagValues struct {
	fileType     string
	ignoreCase   bool
	isRegex      bool
	contextLines int
	exportPath   string
	noColor      bool
}

var searchFlags searchFlagValues

func init() {
	rootCmd.Flags().StringVar(&searchFlags.fileType, "file-type", "",
		"Restrict directory scans to one extension (e.g. .log, .sql)")
	rootCmd.Flags().BoolVar(&searchFlags.ignoreCase, "ignore-case", true,
		"Case-insensitive search (use --ignore-case=false for exact case)")
	rootCmd.Flags().BoolVar(&searchFlags.isRegex, "regex", false,
		"Treat the keyword as a regular expression")
	rootCmd.Flags().IntVar(&searchFlags.contextLines, "context-lines", 0,
		"Number of context lines shown around text-file matches")
	rootCmd.Flags().StringVar(&searchFlags.exportPath, "export", "",
		"Write results to a file (.csv, .json, .yaml, or plain text by extension)")
	rootCmd.Flags().BoolVar(&searchFlags.noColor, "no-color", false,
		"Disable match highlighting")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	root, keyword := args[0], args[1]

	cfg := dbgrep.ScanConfig{
		Keyword:        keyword,
		IsRegex:        searchFlags.isRegex,
		IgnoreCase:     searchFlags.ignoreCase,
		FileTypeFilter: searchFlags.fileType,
		ContextLines:   searchFlags.contextLines,
	}

	scanner, err := scan.New(cfg, logger)
	if err != nil {
		return err
	}

	records, err := scanner.Scan(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	f := format.New(useColor())
	if len(records) == 0 {
		fmt.Fprintln(out, "No matches found.")
	} else {
		for _, rec := range records {
			for _, line := range f.Render(rec) {
				fmt.Fprintln(out, line)
			}
		}
		fmt.Fprintf(out, "\nTotal matches found: %d\n", len(records))
	}

	if searchFlags.exportPath != "" {
		doc := export.NewDocument(keyword, records)
		if err := export.Write(searchFlags.exportPath, doc); err != nil {
			return err
		}
		logger.Verbose("exported run %s to %s", doc.RunID, searchFlags.exportPath)
	}
	return nil
}

// useColor enables highlighting only for interactive terminals, and never
// when --no-color is given. Piped output stays clean for grep and friends.
func useColor() bool {
	if searchFlags.noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
