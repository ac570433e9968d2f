package bindmap

import (
	"strings"
	"testing"

	"github.com/dhamidi/ctlbind/descriptor"
	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCompletionsAt(t *testing.T) {
	tests := []struct {
		line     string
		col      int
		expected []string
	}{
		{"", 0, []string{"bus", "rid", "route", "track", "vca"}},
		{"r", 1, []string{"rid", "route"}},
		{"  tr", 4, []string{"track"}},
		{"route/", 6, []string{"balance", "compressor", "eq", "filter", "gain", "mute", "pandirection", "panwidth", "plugin", "recenable", "send", "solo", "trim"}},
		{"route/pa", 8, []string{"pandirection", "panwidth"}},
		{"/bus/send/", 10, []string{"direction", "enable", "gain"}},
		{"route/filter/hi/s", 17, []string{"slope"}},
		{"route/gain 1", 12, nil},
		{"route/gain 1", 7, []string{"gain"}},
		{"# route/", 8, nil},
		{"route/gain/", 11, nil},
		{"ro", 50, []string{"route"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, completionsAt(tt.line, tt.col)); diff != "" {
				t.Errorf("completionsAt(%q, %d) mismatch (-want +got):\n%s", tt.line, tt.col, diff)
			}
		})
	}
}

func TestToProtocolDiagnostics(t *testing.T) {
	m := Parse("x.ctlmap", []byte("route/gain 1\n  vca/gain foo\nroute/gain 1\n"))
	got := toProtocolDiagnostics(m)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if first.Range.Start.Line != 1 || first.Range.Start.Character != 2 || first.Range.End.Character != 14 {
		t.Errorf("Range = %+v, want line 1 columns 2-14", first.Range)
	}
	if first.Severity == nil || *first.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", first.Severity)
	}
	if first.Source == nil || *first.Source != "ctlbind" {
		t.Errorf("Source = %v, want ctlbind", first.Source)
	}

	second := got[1]
	if second.Severity == nil || *second.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("Severity = %v, want warning", second.Severity)
	}
}

func TestToProtocolDiagnosticsClears(t *testing.T) {
	got := toProtocolDiagnostics(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("toProtocolDiagnostics(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestHoverText(t *testing.T) {
	tests := []struct {
		input    string
		contains []string
	}{
		{"route/gain 5", []string{"**route** `GainAutomation`", "- position: 4"}},
		{"vca/mute B3", []string{"**vca**", "- position: 2 (bank relative)"}},
		{"bus/solo S7", []string{"**selection**", "- selection: 7 (bank relative)"}},
		{"track/gain Bass", []string{"**named**", "- name: Bass"}},
		{"route/plugin/parameter 1 4 9", []string{"- target[0]: 4", "- target[1]: 9"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			text := hoverText(descriptor.MustParse(tt.input))
			for _, want := range tt.contains {
				if !strings.Contains(text, want) {
					t.Errorf("hoverText(%q) = %q, missing %q", tt.input, text, want)
				}
			}
		})
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"file:///home/user/maps/a.ctlmap", "/home/user/maps/a.ctlmap"},
		{"file:///tmp/with%20space.ctlmap", "/tmp/with space.ctlmap"},
		{"untitled:1", "untitled:1"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Errorf("uriToPath(%q) error: %v", tt.uri, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.expected)
		}
	}
}
