package ulog

import "strings"

// Severity identifies one of the eight fixed log levels, in syslog order
// (lower value = more severe). The set is closed: adding or removing a level
// is a schema change, not something callers can do at runtime.
type Severity int

const (
	SeverityEmerg Severity = iota
	SeverityAlert
	SeverityCrit
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

// String returns the canonical level name.
func (s Severity) String() string {
	switch s {
	case SeverityEmerg:
		return "emerg"
	case SeverityAlert:
		return "alert"
	case SeverityCrit:
		return "crit"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNotice:
		return "notice"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Tag returns the fixed rendering label used for console output. Styling is
// the sink's business; the table only fixes the text.
func (s Severity) Tag() string {
	switch s {
	case SeverityEmerg:
		return "EMERG"
	case SeverityAlert:
		return "ALERT"
	case SeverityCrit:
		return "CRIT"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARN"
	case SeverityNotice:
		return "NOTICE"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	default:
		return "???"
	}
}

// Displayed reports whether the level passes the minimum displayed severity.
// Only sinks consult this; dispatch itself never filters by level.
func (s Severity) Displayed(min Severity) bool {
	return s <= min
}

// ParseSeverity resolves a level name. "emergency" and "critical" are
// accepted as synonyms for "emerg" and "crit".
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "emerg", "emergency":
		return SeverityEmerg, true
	case "alert":
		return SeverityAlert, true
	case "crit", "critical":
		return SeverityCrit, true
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "notice":
		return SeverityNotice, true
	case "info":
		return SeverityInfo, true
	case "debug":
		return SeverityDebug, true
	}
	return SeverityInfo, false
}

// Severities returns all eight levels in order.
func Severities() []Severity {
	return []Severity{
		SeverityEmerg,
		SeverityAlert,
		SeverityCrit,
		SeverityError,
		SeverityWarning,
		SeverityNotice,
		SeverityInfo,
		SeverityDebug,
	}
}
