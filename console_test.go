package ulog

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleSink_RendersRecord(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, Config{
		MinSeverity: SeverityDebug,
		HideTime:    true,
		NoColor:     true,
	})

	sink.Write(SeverityError, "boom", Meta{"source": "lib/foo.js"})

	got := buf.String()
	want := "[ERROR] boom {\"source\":\"lib/foo.js\"}\n"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestConsoleSink_ThresholdFilters(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, Config{
		MinSeverity: SeverityInfo,
		HideTime:    true,
		NoColor:     true,
	})

	sink.Write(SeverityDebug, "hidden", Meta{"source": "lib/foo.js"})
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered below min info, got %q", buf.String())
	}

	sink.Write(SeverityWarning, "shown", nil)
	if !strings.Contains(buf.String(), "[WARN] shown") {
		t.Errorf("warning should pass the threshold, got %q", buf.String())
	}
}

func TestConsoleSink_HideMeta(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, Config{
		MinSeverity: SeverityDebug,
		HideTime:    true,
		HideMeta:    true,
		NoColor:     true,
	})

	sink.Write(SeverityInfo, "quiet", Meta{"source": "lib/foo.js"})

	if got := buf.String(); got != "[INFO] quiet\n" {
		t.Errorf("meta should be suppressed, got %q", got)
	}
}

func TestConsoleSink_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, Config{
		MinSeverity: SeverityDebug,
		NoColor:     true,
	})

	sink.Write(SeverityInfo, "now", nil)

	got := buf.String()
	if strings.HasPrefix(got, "[") {
		t.Errorf("timestamp expected before the tag, got %q", got)
	}
	if !strings.Contains(got, "[INFO] now") {
		t.Errorf("record body missing, got %q", got)
	}
}
