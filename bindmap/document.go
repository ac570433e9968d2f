// Package bindmap reads control binding maps: plain text files listing
// one control descriptor per line, as kept by control-surface mappings.
//
//	# faders for the first bank
//	route/gain B1
//	route/gain B2
//	bus/send/gain Reverb 1
//
// Blank lines and lines starting with '#' are ignored. Every other line is
// trimmed and handed to descriptor.Parse.
package bindmap

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ctlbind/descriptor"
)

// Ext is the file extension of binding maps.
const Ext = ".ctlmap"

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Entry is one successfully parsed binding.
type Entry struct {
	Path       string
	Line       int
	Column     int
	Text       string
	Descriptor *descriptor.Descriptor
}

// Diagnostic reports a problem on one line. Line is 1-based, columns are
// 0-based byte offsets into the raw line.
type Diagnostic struct {
	Path     string
	Line     int
	StartCol int
	EndCol   int
	Severity Severity
	Message  string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Path, d.Line, d.StartCol+1, d.Severity, d.Message)
}

type Map struct {
	Path        string
	Content     []byte
	Entries     []Entry
	Diagnostics []Diagnostic
}

// Parse reads every binding in content. It never fails; problems are
// reported as diagnostics.
func Parse(path string, content []byte) *Map {
	m := &Map{Path: path, Content: content}
	seen := make(map[string]int)

	for i, raw := range strings.Split(string(content), "\n") {
		line := i + 1
		raw = strings.TrimSuffix(raw, "\r")
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		start := strings.Index(raw, text)
		end := start + len(text)

		d, err := descriptor.Parse(text)
		if err != nil {
			m.Diagnostics = append(m.Diagnostics, Diagnostic{
				Path:     path,
				Line:     line,
				StartCol: start,
				EndCol:   end,
				Severity: SeverityError,
				Message:  err.Error(),
				Err:      err,
			})
			continue
		}

		if first, ok := seen[text]; ok {
			m.Diagnostics = append(m.Diagnostics, Diagnostic{
				Path:     path,
				Line:     line,
				StartCol: start,
				EndCol:   end,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("duplicate of line %d", first),
			})
		} else {
			seen[text] = line
		}

		m.Entries = append(m.Entries, Entry{
			Path:       path,
			Line:       line,
			Column:     start,
			Text:       text,
			Descriptor: d,
		})
	}

	return m
}

// HasErrors reports whether any line failed to parse.
func (m *Map) HasErrors() bool {
	for _, d := range m.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// EntryAt returns the binding on the given 1-based line, or nil.
func (m *Map) EntryAt(line int) *Entry {
	for i := range m.Entries {
		if m.Entries[i].Line == line {
			return &m.Entries[i]
		}
	}
	return nil
}

// Line returns the raw text of a 1-based line, or "" when out of range.
func (m *Map) Line(line int) string {
	lines := strings.Split(string(m.Content), "\n")
	if line <= 0 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}
