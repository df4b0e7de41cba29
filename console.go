package ulog

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

var severityColors = map[Severity]*color.Color{
	SeverityEmerg:   color.New(color.FgMagenta, color.Bold),
	SeverityAlert:   color.New(color.FgMagenta),
	SeverityCrit:    color.New(color.FgRed, color.Bold),
	SeverityError:   color.New(color.FgRed),
	SeverityWarning: color.New(color.FgYellow),
	SeverityNotice:  color.New(color.FgCyan),
	SeverityInfo:    color.New(color.FgGreen),
	SeverityDebug:   color.New(color.FgWhite),
}

// ConsoleSink renders records to a terminal writer, one line per record:
// timestamp, colored severity tag, message, metadata as JSON. The display
// threshold and toggles come from Config.
type ConsoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	min      Severity
	hideMeta bool
	hideTime bool
}

func NewConsoleSink(out io.Writer, cfg Config) *ConsoleSink {
	if cfg.NoColor {
		color.NoColor = true
	}
	return &ConsoleSink{
		out:      out,
		min:      cfg.MinSeverity,
		hideMeta: cfg.HideMeta,
		hideTime: cfg.HideTime,
	}
}

// Write renders one record. Records below the displayed threshold are
// dropped here, never in the router.
func (c *ConsoleSink) Write(sev Severity, msg string, meta Meta) {
	if !sev.Displayed(c.min) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hideTime {
		fmt.Fprint(c.out, time.Now().Format("2006-01-02 15:04:05.000"), " ")
	}
	tag := sev.Tag()
	if col, ok := severityColors[sev]; ok {
		tag = col.Sprint(tag)
	}
	fmt.Fprintf(c.out, "[%s] %s", tag, msg)
	if !c.hideMeta && len(meta) > 0 {
		if data, err := json.Marshal(meta); err == nil {
			fmt.Fprint(c.out, " ", string(data))
		}
	}
	fmt.Fprintln(c.out)
}
