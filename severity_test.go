package ulog

import "testing"

func TestParseSeverity_Aliases(t *testing.T) {
	cases := []struct {
		name string
		want Severity
	}{
		{"emerg", SeverityEmerg},
		{"emergency", SeverityEmerg},
		{"crit", SeverityCrit},
		{"critical", SeverityCrit},
		{"ERROR", SeverityError},
		{" warning ", SeverityWarning},
		{"notice", SeverityNotice},
		{"info", SeverityInfo},
		{"debug", SeverityDebug},
		{"alert", SeverityAlert},
	}

	for _, c := range cases {
		got, ok := ParseSeverity(c.name)
		if !ok {
			t.Errorf("ParseSeverity(%q) not recognized", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", c.name, got, c.want)
		}
	}

	if _, ok := ParseSeverity("verbose"); ok {
		t.Error("ParseSeverity should reject names outside the table")
	}
}

func TestSeverities_FixedTable(t *testing.T) {
	all := Severities()
	if len(all) != 8 {
		t.Fatalf("expected exactly 8 severities, got %d", len(all))
	}

	seenTags := make(map[string]bool)
	for _, s := range all {
		if s.Tag() == "???" || s.Tag() == "" {
			t.Errorf("severity %v has no rendering tag", s)
		}
		if seenTags[s.Tag()] {
			t.Errorf("duplicate tag %q", s.Tag())
		}
		seenTags[s.Tag()] = true

		// Canonical names must round-trip through the parser.
		parsed, ok := ParseSeverity(s.String())
		if !ok || parsed != s {
			t.Errorf("name %q does not round-trip, got %v", s.String(), parsed)
		}
	}
}

func TestSeverity_Displayed(t *testing.T) {
	if !SeverityError.Displayed(SeverityInfo) {
		t.Error("error should be displayed at min level info")
	}
	if SeverityDebug.Displayed(SeverityInfo) {
		t.Error("debug should be hidden at min level info")
	}
	if !SeverityDebug.Displayed(SeverityDebug) {
		t.Error("debug should be displayed at min level debug")
	}
	if !SeverityEmerg.Displayed(SeverityEmerg) {
		t.Error("emerg should always pass its own threshold")
	}
}
