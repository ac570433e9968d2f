package bindmap

import (
	"errors"
	"testing"

	"github.com/dhamidi/ctlbind/descriptor"
)

const sampleMap = `# first bank
route/gain B1
  route/gain B2

vca/gain foo
route/send/gain 3
route/gain B1
bus/mute Drums` + "\r\n"

func TestParseMap(t *testing.T) {
	m := Parse("sample.ctlmap", []byte(sampleMap))

	t.Run("entries", func(t *testing.T) {
		want := []struct {
			line   int
			column int
			text   string
		}{
			{2, 0, "route/gain B1"},
			{3, 2, "route/gain B2"},
			{7, 0, "route/gain B1"},
			{8, 0, "bus/mute Drums"},
		}
		if len(m.Entries) != len(want) {
			t.Fatalf("len(Entries) = %d, want %d", len(m.Entries), len(want))
		}
		for i, w := range want {
			e := m.Entries[i]
			if e.Line != w.line || e.Column != w.column || e.Text != w.text {
				t.Errorf("Entries[%d] = {%d %d %q}, want {%d %d %q}", i, e.Line, e.Column, e.Text, w.line, w.column, w.text)
			}
			if e.Path != "sample.ctlmap" {
				t.Errorf("Entries[%d].Path = %q", i, e.Path)
			}
		}
		if got := m.Entries[3].Descriptor.TopLevelName(); got != "Drums" {
			t.Errorf("TopLevelName() = %q, want %q", got, "Drums")
		}
	})

	t.Run("diagnostics", func(t *testing.T) {
		if len(m.Diagnostics) != 3 {
			t.Fatalf("len(Diagnostics) = %d, want 3: %v", len(m.Diagnostics), m.Diagnostics)
		}

		slot := m.Diagnostics[0]
		if slot.Line != 5 || slot.Severity != SeverityError || !errors.Is(slot.Err, descriptor.ErrInvalidSlot) {
			t.Errorf("Diagnostics[0] = %+v, want invalid slot error on line 5", slot)
		}
		if slot.StartCol != 0 || slot.EndCol != len("vca/gain foo") {
			t.Errorf("Diagnostics[0] span = %d-%d", slot.StartCol, slot.EndCol)
		}

		arity := m.Diagnostics[1]
		if arity.Line != 6 || !errors.Is(arity.Err, descriptor.ErrMalformed) {
			t.Errorf("Diagnostics[1] = %+v, want malformed error on line 6", arity)
		}

		dup := m.Diagnostics[2]
		if dup.Line != 7 || dup.Severity != SeverityWarning || dup.Message != "duplicate of line 2" {
			t.Errorf("Diagnostics[2] = %+v, want duplicate warning on line 7", dup)
		}
	})

	if !m.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestParseMapClean(t *testing.T) {
	m := Parse("clean.ctlmap", []byte("# nothing but comments\n\n   # indented\n"))
	if len(m.Entries) != 0 || len(m.Diagnostics) != 0 {
		t.Errorf("Parse = %d entries, %d diagnostics; want none", len(m.Entries), len(m.Diagnostics))
	}
	if m.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
}

func TestWarningsAreNotErrors(t *testing.T) {
	m := Parse("dup.ctlmap", []byte("route/gain 1\nroute/gain 1\n"))
	if len(m.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(m.Diagnostics))
	}
	if m.HasErrors() {
		t.Error("HasErrors() = true for a warning-only map")
	}
}

func TestEntryAt(t *testing.T) {
	m := Parse("sample.ctlmap", []byte(sampleMap))
	if e := m.EntryAt(3); e == nil || e.Text != "route/gain B2" {
		t.Errorf("EntryAt(3) = %v, want route/gain B2", e)
	}
	if e := m.EntryAt(1); e != nil {
		t.Errorf("EntryAt(1) = %v, want nil for comment line", e)
	}
	if e := m.EntryAt(99); e != nil {
		t.Errorf("EntryAt(99) = %v, want nil", e)
	}
}

func TestLine(t *testing.T) {
	m := Parse("sample.ctlmap", []byte(sampleMap))
	tests := []struct {
		line     int
		expected string
	}{
		{1, "# first bank"},
		{3, "  route/gain B2"},
		{8, "bus/mute Drums"},
		{0, ""},
		{100, ""},
	}
	for _, tt := range tests {
		if got := m.Line(tt.line); got != tt.expected {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Path: "a.ctlmap", Line: 4, StartCol: 2, Severity: SeverityWarning, Message: "duplicate of line 1"}
	if got, want := d.String(), "a.ctlmap:4:3: warning: duplicate of line 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
