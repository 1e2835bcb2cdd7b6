package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/ui/style"
)

const (
	defaultLogLimit  = 50
	tailPollInterval = 500 * time.Millisecond
)

// View shows the last N lines of the log file
func View(args []string, flags *dispatchers.ParsedFlags) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	jsonOutput := flags.Has("--json")
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")

	limit := flags.Int("--limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}

	start := 0
	if len(lines) > limit {
		start = len(lines) - limit
	}

	if jsonOutput {
		return viewJSON(lines[start:], deps)
	}

	for _, line := range lines[start:] {
		_, _ = deps.Println(colorizeLogLine(line))
	}

	return nil
}

// LogLine is one parsed line of lu.log.
type LogLine struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Raw       string `json:"raw,omitempty"`
}

// logEntryRegex matches lines like: [2026-01-29 10:30:45] INFO: message
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s?(.*)$`)

func parseLine(raw string) LogLine {
	matches := logEntryRegex.FindStringSubmatch(raw)
	if matches == nil {
		return LogLine{Message: raw, Raw: raw}
	}
	return LogLine{
		Timestamp: matches[1],
		Level:     matches[2],
		Message:   matches[3],
	}
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]LogLine, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file in real time
func Tail(args []string, flags *dispatchers.ParsedFlags) error {
	return tail(args, flags, DefaultDeps())
}

func tail(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return follow(ctx, file, deps)
}

func follow(ctx context.Context, r io.Reader, deps Deps) error {
	reader := bufio.NewReader(r)
	ticker := time.NewTicker(tailPollInterval)
	defer ticker.Stop()

	var partial string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		if err == io.EOF {
			// Keep an unterminated line until the rest of it is written.
			partial += line
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				continue
			}
		}

		_, _ = deps.Println(colorizeLogLine(strings.TrimSuffix(partial+line, "\n")))
		partial = ""
	}
}

// Clear empties the log file
func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clear(args, flags, DefaultDeps())
}

func clear(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath := deps.LogFilePath()

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

// colorizeLogLine adds color to log lines based on level
func colorizeLogLine(line string) string {
	switch parseLine(line).Level {
	case "ERROR":
		return style.Error(line)
	case "WARN":
		return style.Warning(line)
	case "INFO":
		return style.Info(line)
	case "DEBUG":
		return style.Muted(line)
	}
	return line
}
