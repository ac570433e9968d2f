package format

import (
	"io"

	"github.com/dhamidi/ctlbind/descriptor"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w io.Writer
	d *descriptor.Descriptor
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(d *descriptor.Descriptor) error {
	e.d = d
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append([]byte("---\n"), text...))
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildData(e.d))
}
