package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ctlbind/descriptor"
)

// LineEncoder writes one tab-separated line per descriptor:
// type, address, subtype, targets, source.
type LineEncoder struct {
	w io.Writer
	d *descriptor.Descriptor
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(d *descriptor.Descriptor) error {
	e.d = d
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	d := e.d
	subtype := d.Subtype().String()
	if subtype == "" {
		subtype = "-"
	}
	line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\n",
		d.TopLevelType(),
		e.address(),
		subtype,
		e.targetsStr(),
		d.Source(),
	)
	return []byte(line), nil
}

func (e *LineEncoder) address() string {
	d := e.d
	switch d.TopLevelType() {
	case descriptor.NamedRoute:
		return d.TopLevelName()
	case descriptor.Unclassified:
		return "-"
	case descriptor.SelectionCount:
		return fmt.Sprintf("S%d+%d", d.RawSelectionID(), d.BankOffset())
	}
	if d.Banked() {
		return fmt.Sprintf("B%d+%d", d.RawPresentationOrder(), d.BankOffset())
	}
	return fmt.Sprintf("%d", d.PresentationOrder())
}

func (e *LineEncoder) targetsStr() string {
	targets := e.d.Targets()
	if len(targets) == 0 {
		return "-"
	}
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(parts, ",")
}
