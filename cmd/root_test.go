package cmd

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseLogFormatter(t *testing.T) {
	if got := parseLogFormatter("json"); got != log.JSONFormatter {
		t.Errorf("parseLogFormatter(json): got %v", got)
	}
	if got := parseLogFormatter("logfmt"); got != log.LogfmtFormatter {
		t.Errorf("parseLogFormatter(logfmt): got %v", got)
	}
	if got := parseLogFormatter("anything-else"); got != log.TextFormatter {
		t.Errorf("parseLogFormatter fallback: got %v", got)
	}
}

func TestPrintUsageListsCommands(t *testing.T) {
	var out bytes.Buffer
	fs := flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	printUsage(fs, &out)

	got := out.String()
	for _, want := range []string{"run [file]", "tui [file]", "version", "help", "TASKDECK_FILE"} {
		if !strings.Contains(got, want) {
			t.Errorf("usage missing %q:\n%s", want, got)
		}
	}
}
