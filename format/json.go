package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/ctlbind/descriptor"
)

type JSONEncoder struct {
	w io.Writer
	d *descriptor.Descriptor
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(d *descriptor.Descriptor) error {
	e.d = d
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildData(e.d), "", "  ")
}

// descriptorData is the document shape shared by the structured encoders.
type descriptorData struct {
	Source            string   `json:"source" yaml:"source"`
	TopLevelType      string   `json:"topLevelType" yaml:"topLevelType"`
	TopLevelName      string   `json:"topLevelName,omitempty" yaml:"topLevelName,omitempty"`
	Subtype           string   `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Stripable         bool     `json:"stripable" yaml:"stripable"`
	Banked            bool     `json:"banked" yaml:"banked"`
	BankOffset        uint32   `json:"bankOffset,omitempty" yaml:"bankOffset,omitempty"`
	PresentationOrder *uint32  `json:"presentationOrder,omitempty" yaml:"presentationOrder,omitempty"`
	SelectionID       *uint32  `json:"selectionId,omitempty" yaml:"selectionId,omitempty"`
	Target            []uint32 `json:"target,omitempty" yaml:"target,omitempty,flow"`
}

func buildData(d *descriptor.Descriptor) descriptorData {
	data := descriptorData{
		Source:       d.Source(),
		TopLevelType: d.TopLevelType().String(),
		TopLevelName: d.TopLevelName(),
		Subtype:      d.Subtype().String(),
		Stripable:    d.Stripable(),
		Banked:       d.Banked(),
		BankOffset:   d.BankOffset(),
		Target:       d.Targets(),
	}
	switch d.TopLevelType() {
	case descriptor.SelectionCount:
		id := d.SelectionID()
		data.SelectionID = &id
	case descriptor.PresentationOrderRoute, descriptor.PresentationOrderBus,
		descriptor.PresentationOrderTrack, descriptor.PresentationOrderVCA:
		order := d.PresentationOrder()
		data.PresentationOrder = &order
	}
	return data
}
