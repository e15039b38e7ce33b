package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/risksurface/risksurface/internal/config"
	"github.com/risksurface/risksurface/internal/logging"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect the tour's debug log",
	Long: `View, filter, and export the tour's JSON debug log.

The tour only writes a log when logging is enabled (--log-file or
logging.enabled in config). Rotated backups are included automatically.

Examples:
  # Show the last 50 entries
  risksurface logs

  # Show every warning and error
  risksurface logs --level warn -n 0

  # Follow the log while the tour runs in another terminal
  risksurface logs -f

  # Entries from the landing page in the last 10 minutes
  risksurface logs --component landing --since 10m

  # Find scroll-target misses and export them as CSV
  risksurface logs --grep "no section" --export misses.csv --format csv`,
	RunE: runLogs,
}

var (
	logsFile      string
	logsTail      int
	logsFollow    bool
	logsLevel     string
	logsComponent string
	logsRoute     string
	logsRevision  string
	logsSince     string
	logsGrep      string
	logsExport    string
	logsFormat    string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVar(&logsFile, "file", "", "Log file to read (default: the configured log file)")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Filter by component (app/tui/landing)")
	logsCmd.Flags().StringVar(&logsRoute, "route", "", "Filter by route (\"/\" or \"/projects\")")
	logsCmd.Flags().StringVar(&logsRevision, "revision", "", "Filter by content revision")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter entries matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsExport, "export", "", "Export matching entries to this file instead of printing")
	logsCmd.Flags().StringVar(&logsFormat, "format", "json", "Export format (json/text/csv)")
}

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// levelColor returns the ANSI color code for a log level
func levelColor(level string) string {
	switch strings.ToUpper(level) {
	case logging.LevelDebug:
		return colorGray
	case logging.LevelInfo:
		return colorBlue
	case logging.LevelWarn:
		return colorYellow
	case logging.LevelError:
		return colorRed
	default:
		return colorReset
	}
}

// formatLogEntry formats a log entry for terminal output
func formatLogEntry(entry logging.LogEntry) string {
	var sb strings.Builder

	// Timestamp
	sb.WriteString(colorGray)
	sb.WriteString("[")
	sb.WriteString(entry.Timestamp.Format("15:04:05.000"))
	sb.WriteString("]")
	sb.WriteString(colorReset)

	// Level with color
	sb.WriteString(" ")
	sb.WriteString(levelColor(entry.Level))
	sb.WriteString("[")
	sb.WriteString(strings.ToUpper(entry.Level))
	sb.WriteString("]")
	sb.WriteString(colorReset)

	// Message
	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	// Context fields (component, route, revision)
	if entry.Component != "" {
		sb.WriteString(" ")
		sb.WriteString(colorCyan)
		sb.WriteString("component=")
		sb.WriteString(entry.Component)
		sb.WriteString(colorReset)
	}
	if entry.Route != "" {
		sb.WriteString(" ")
		sb.WriteString(colorCyan)
		sb.WriteString("route=")
		sb.WriteString(entry.Route)
		sb.WriteString(colorReset)
	}
	if entry.Revision != "" {
		sb.WriteString(" ")
		sb.WriteString(colorCyan)
		sb.WriteString("revision=")
		sb.WriteString(entry.Revision)
		sb.WriteString(colorReset)
	}

	// Extra fields
	for key, value := range entry.Attrs {
		sb.WriteString(" ")
		sb.WriteString(colorCyan)
		sb.WriteString(key)
		sb.WriteString("=")
		sb.WriteString(colorReset)
		sb.WriteString(fmt.Sprintf("%v", value))
	}

	return sb.String()
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logPath := logsFile
	if logPath == "" {
		logPath = cfg.Logging.ResolveLogFile()
	}

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		cmd.Printf("No logs found at %s\n", logPath)
		cmd.Println("Enable logging with --log-file or logging.enabled to produce them.")
		return nil
	}

	filter, err := buildLogFilter()
	if err != nil {
		return err
	}

	// Follow mode
	if logsFollow {
		return followLogs(cmd, logPath, filter)
	}

	entries, err := logging.AggregateLogs(logPath)
	if err != nil {
		return err
	}
	entries = logging.FilterLogs(entries, filter)

	if logsExport != "" {
		if err := logging.ExportLogEntries(entries, logsExport, logsFormat); err != nil {
			return err
		}
		cmd.Printf("Exported %d entries to %s\n", len(entries), logsExport)
		return nil
	}

	// Apply tail limit
	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	if len(entries) == 0 {
		cmd.Println("No matching log entries found.")
		return nil
	}

	for _, entry := range entries {
		cmd.Println(formatLogEntry(entry))
	}

	return nil
}

// buildLogFilter assembles a filter from the command's flags.
func buildLogFilter() (logging.LogFilter, error) {
	filter := logging.LogFilter{
		Component: logsComponent,
		Route:     logsRoute,
		Revision:  logsRevision,
	}

	if logsLevel != "" {
		filter.Level = logging.ParseLevel(logsLevel)
	}

	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return filter, fmt.Errorf("invalid duration format: %w", err)
		}
		filter.StartTime = time.Now().Add(-duration)
	}

	if logsGrep != "" {
		grep, err := regexp.Compile(logsGrep)
		if err != nil {
			return filter, fmt.Errorf("invalid grep pattern: %w", err)
		}
		filter.Grep = grep
	}

	return filter, nil
}

// followLogs implements tail -f behavior for the log file
func followLogs(cmd *cobra.Command, logPath string, filter logging.LogFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Seek to end of file
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	cmd.Printf("Following %s... (Ctrl+C to stop)\n\n", logPath)

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				// No new data, wait briefly and try again
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return fmt.Errorf("error reading log file: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry, err := logging.ParseLogEntry(line)
		if err != nil {
			// If we can't parse as JSON, display raw line
			cmd.Println(line)
			continue
		}

		if !filter.Matches(entry) {
			continue
		}

		cmd.Println(formatLogEntry(entry))
	}
}
