package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_WritesToExtraSink(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", &buf)

	logger.Info().Str("component", "test").Msg("hello from test")

	out := buf.String()
	if !strings.Contains(out, "hello from test") {
		t.Errorf("Expected sink to receive log message, got %q", out)
	}
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New("not-a-level", &buf)

	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level fallback, got %s", logger.GetLevel())
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", &buf)

	logger.Debug().Msg("should be filtered")
	logger.Warn().Msg("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Error("Debug message should not pass a warn-level logger")
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("Warn message should pass a warn-level logger, got %q", out)
	}
}

func TestComponentLogger_TagsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	child := ComponentLogger(logger, "download")
	child.Info().Msg("tagged")

	out := buf.String()
	if !strings.Contains(out, "download") {
		t.Errorf("Expected component tag in output, got %q", out)
	}
}

func TestPaneWriter_PlainText(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(PaneWriter(&buf))

	logger.Info().Msg("pane line")

	out := buf.String()
	if !strings.Contains(out, "pane line") {
		t.Errorf("Expected pane writer to carry the message, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Pane output must not contain ANSI color codes")
	}
}
