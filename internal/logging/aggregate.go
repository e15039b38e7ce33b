package logging

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"
)

// LogEntry represents a parsed log entry with all structured fields.
type LogEntry struct {
	Timestamp time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	Route     string         `json:"route,omitempty"`
	Revision  string         `json:"revision,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// LogFilter defines criteria for filtering log entries.
type LogFilter struct {
	// Level filters to entries at or above this level (DEBUG < INFO < WARN < ERROR).
	// Empty string means no level filtering.
	Level string

	// StartTime filters to entries at or after this time.
	// Zero value means no start time filtering.
	StartTime time.Time

	// EndTime filters to entries at or before this time.
	// Zero value means no end time filtering.
	EndTime time.Time

	// Component filters to entries logged by this component.
	// Empty string means no component filtering.
	Component string

	// Route filters to entries logged under this route.
	// Empty string means no route filtering.
	Route string

	// Revision filters to entries from this content revision.
	// Empty string means no revision filtering.
	Revision string

	// Grep filters to entries whose message or attributes match this pattern.
	// Nil means no pattern filtering.
	Grep *regexp.Regexp
}

// levelOrder defines the ordering of log levels for filtering.
var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// AggregateLogs reads and parses every entry logged at logPath, including
// rotated backups. Backups are read oldest first and gzipped backups are
// decompressed on the fly.
// Entries are returned sorted by timestamp in ascending order.
func AggregateLogs(logPath string) ([]LogEntry, error) {
	if _, err := os.Stat(logPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file at %s: %w", logPath, err)
		}
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	var entries []LogEntry
	for _, backup := range backupFiles(logPath) {
		parsed, err := readLogFile(backup)
		if err != nil {
			// A damaged backup must not block reading the live log.
			continue
		}
		entries = append(entries, parsed...)
	}

	live, err := readLogFile(logPath)
	if err != nil {
		return nil, err
	}
	entries = append(entries, live...)

	// Sort entries by timestamp
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return entries, nil
}

// backupFiles lists the rotated backups for logPath, oldest first.
// Backups are numbered contiguously from 1 (most recent), so the first
// gap ends the scan.
func backupFiles(logPath string) []string {
	var found []string
	for n := 1; ; n++ {
		plain := fmt.Sprintf("%s.%d", logPath, n)
		if gz := plain + ".gz"; fileExists(gz) {
			found = append(found, gz)
			continue
		}
		if fileExists(plain) {
			found = append(found, plain)
			continue
		}
		break
	}

	// The highest number is the oldest backup; read that one first.
	slices.Reverse(found)
	return found
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readLogFile parses a single log file, skipping lines that fail to parse
// so a partially corrupted file still yields its intact entries.
func readLogFile(path string) ([]LogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress backup: %w", err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	var entries []LogEntry
	scanner := bufio.NewScanner(reader)

	// Increase buffer size for potentially long log lines
	const maxScanTokenSize = 1024 * 1024 // 1MB
	buf := make([]byte, maxScanTokenSize)
	scanner.Buffer(buf, maxScanTokenSize)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseLogEntry(line)
		if err != nil {
			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}

	return entries, nil
}

// ParseLogEntry parses a single JSON log line into a LogEntry.
func ParseLogEntry(line string) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return LogEntry{}, fmt.Errorf("invalid JSON: %w", err)
	}

	entry := LogEntry{
		Attrs: make(map[string]any),
	}

	// Extract standard fields
	if timeStr, ok := raw["time"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, timeStr); err == nil {
			entry.Timestamp = t
		}
	}

	if level, ok := raw["level"].(string); ok {
		entry.Level = level
	}

	if msg, ok := raw["msg"].(string); ok {
		entry.Message = msg
	}

	if component, ok := raw["component"].(string); ok {
		entry.Component = component
	}

	if route, ok := raw["route"].(string); ok {
		entry.Route = route
	}

	if revision, ok := raw["revision"].(string); ok {
		entry.Revision = revision
	}

	// Collect remaining fields as attrs
	standardFields := map[string]bool{
		"time":      true,
		"level":     true,
		"msg":       true,
		"component": true,
		"route":     true,
		"revision":  true,
	}

	for k, v := range raw {
		if !standardFields[k] {
			entry.Attrs[k] = v
		}
	}

	return entry, nil
}

// FilterLogs filters log entries based on the provided filter criteria.
// Multiple filter criteria are combined with AND logic.
func FilterLogs(entries []LogEntry, filter LogFilter) []LogEntry {
	if filter.isEmpty() {
		return entries
	}

	var filtered []LogEntry
	for _, entry := range entries {
		if filter.Matches(entry) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// isEmpty checks if no filter criteria are set.
func (f LogFilter) isEmpty() bool {
	return f.Level == "" &&
		f.StartTime.IsZero() &&
		f.EndTime.IsZero() &&
		f.Component == "" &&
		f.Route == "" &&
		f.Revision == "" &&
		f.Grep == nil
}

// Matches reports whether an entry satisfies all filter criteria.
func (f LogFilter) Matches(entry LogEntry) bool {
	// Level filter: entry level must be >= filter level
	if f.Level != "" {
		filterLevelOrder, filterOk := levelOrder[strings.ToUpper(f.Level)]
		entryLevelOrder, entryOk := levelOrder[entry.Level]
		if filterOk && entryOk && entryLevelOrder < filterLevelOrder {
			return false
		}
	}

	// Time range filters
	if !f.StartTime.IsZero() && entry.Timestamp.Before(f.StartTime) {
		return false
	}
	if !f.EndTime.IsZero() && entry.Timestamp.After(f.EndTime) {
		return false
	}

	// Component filter
	if f.Component != "" && entry.Component != f.Component {
		return false
	}

	// Route filter
	if f.Route != "" && entry.Route != f.Route {
		return false
	}

	// Revision filter
	if f.Revision != "" && entry.Revision != f.Revision {
		return false
	}

	// Pattern filter searches the message and the attribute values
	if f.Grep != nil {
		searchText := entry.Message
		for key, value := range entry.Attrs {
			searchText += fmt.Sprintf(" %s=%v", key, value)
		}
		if !f.Grep.MatchString(searchText) {
			return false
		}
	}

	return true
}

// ExportLogEntries exports the given log entries to a file in the specified
// format. Supported formats: "json", "text", "csv".
func ExportLogEntries(entries []LogEntry, outputPath string, format string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	switch strings.ToLower(format) {
	case "json":
		return exportJSON(file, entries)
	case "text":
		return exportText(file, entries)
	case "csv":
		return exportCSV(file, entries)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: json, text, csv)", format)
	}
}

// exportJSON writes entries as a JSON array.
func exportJSON(file *os.File, entries []LogEntry) error {
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// exportText writes entries in a human-readable text format.
func exportText(file *os.File, entries []LogEntry) error {
	for _, entry := range entries {
		// Format: [TIMESTAMP] LEVEL - MESSAGE (context) {attrs}
		var parts []string

		// Add timestamp
		ts := entry.Timestamp.Format("2006-01-02 15:04:05.000")
		parts = append(parts, fmt.Sprintf("[%s]", ts))

		// Add level
		parts = append(parts, entry.Level)

		// Add message
		parts = append(parts, "-", entry.Message)

		// Add context fields if present
		var context []string
		if entry.Component != "" {
			context = append(context, fmt.Sprintf("component=%s", entry.Component))
		}
		if entry.Route != "" {
			context = append(context, fmt.Sprintf("route=%s", entry.Route))
		}
		if entry.Revision != "" {
			context = append(context, fmt.Sprintf("revision=%s", entry.Revision))
		}
		if len(context) > 0 {
			parts = append(parts, fmt.Sprintf("(%s)", strings.Join(context, ", ")))
		}

		// Add extra attrs if present
		if len(entry.Attrs) > 0 {
			attrsJSON, _ := json.Marshal(entry.Attrs)
			parts = append(parts, string(attrsJSON))
		}

		line := strings.Join(parts, " ") + "\n"
		if _, err := file.WriteString(line); err != nil {
			return fmt.Errorf("failed to write text entry: %w", err)
		}
	}

	return nil
}

// exportCSV writes entries as CSV with headers.
func exportCSV(file *os.File, entries []LogEntry) error {
	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	headers := []string{"timestamp", "level", "message", "component", "route", "revision", "attrs"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write entries
	for _, entry := range entries {
		attrsJSON := ""
		if len(entry.Attrs) > 0 {
			if b, err := json.Marshal(entry.Attrs); err == nil {
				attrsJSON = string(b)
			}
		}

		record := []string{
			entry.Timestamp.Format(time.RFC3339Nano),
			entry.Level,
			entry.Message,
			entry.Component,
			entry.Route,
			entry.Revision,
			attrsJSON,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	return nil
}
