// Package format renders parsed control descriptors for display.
package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/ctlbind/descriptor"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(d *descriptor.Descriptor) error
}

// New returns the encoder registered under name, or nil.
func New(name string, w io.Writer) Encoder {
	switch name {
	case "json":
		return NewJSONEncoder(w)
	case "yaml":
		return NewYAMLEncoder(w)
	case "line":
		return NewLineEncoder(w)
	}
	return nil
}

// Names lists the encoder names accepted by New.
func Names() []string {
	return []string{"json", "line", "yaml"}
}
