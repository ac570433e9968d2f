// Package descriptor parses the compact text form used to address an
// automatable mixer control, such as "route/gain 5" or
// "bus/send/gain B2 3", into a Descriptor.
//
// A descriptor names the class of object (route, bus, track, VCA, a
// named route or a selection slot), how that object is identified
// (absolute or bank-relative position, or a name) and which parameter is
// addressed, together with the numeric sub-targets some parameters need.
// Resolving a descriptor against a live session is left to the caller.
package descriptor

import (
	"fmt"
	"strings"
)

// Descriptor is the parsed form of a control address. It is never
// modified after Parse returns and is safe to share between goroutines.
type Descriptor struct {
	source            string
	topLevelType      TopLevelType
	topLevelName      string
	subtype           Subtype
	stripable         bool
	banked            bool
	presentationOrder uint32
	selectionID       uint32
	bankOffset        uint32
	target            []uint32
}

// Parse decodes s. The first space separates a slash-delimited path of at
// least two segments from one or more space-delimited arguments.
func Parse(s string) (*Descriptor, error) {
	sp := strings.IndexByte(s, ' ')
	if sp < 0 {
		return nil, malformed(s, "no space between path and arguments")
	}

	path := split(s[:sp], '/')
	if len(path) < 2 {
		return nil, malformed(s, "path needs at least two segments")
	}

	rest := split(s[sp:], ' ')
	if len(rest) < 1 {
		return nil, malformed(s, "no arguments")
	}

	d := &Descriptor{source: s}
	if err := d.classify(s, path[0], rest[0]); err != nil {
		return nil, err
	}
	if err := d.resolveParameter(s, path, rest); err != nil {
		return nil, err
	}
	return d, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Descriptor {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Descriptor) classify(input, class, slot string) error {
	switch class {
	case "route", "rid":
		d.classifyBySlot(PresentationOrderRoute, slot)
	case "bus":
		d.classifyBySlot(PresentationOrderBus, slot)
	case "track":
		d.classifyBySlot(PresentationOrderTrack, slot)
	case "vca":
		d.topLevelType = PresentationOrderVCA
		d.stripable = true
	}

	if !d.stripable {
		return nil
	}
	return d.decodeSlot(input, slot)
}

// classifyBySlot picks the positional class when slot looks like a
// position and falls back to addressing a route by name otherwise.
func (d *Descriptor) classifyBySlot(positional TopLevelType, slot string) {
	if isSlotToken(slot) {
		d.topLevelType = positional
		d.stripable = true
		return
	}
	d.topLevelType = NamedRoute
	d.topLevelName = slot
}

func (d *Descriptor) decodeSlot(input, slot string) error {
	switch {
	case slot[0] == 'B':
		d.banked = true
		d.presentationOrder = atoi(slot[1:])
	case slot[0] == 'S':
		d.topLevelType = SelectionCount
		d.banked = true
		d.selectionID = atoi(slot[1:])
	case isDigit(slot[0]):
		d.banked = false
		d.presentationOrder = atoi(slot)
	default:
		return invalidSlot(input, slot)
	}

	// Applied on the S branch too: presentationOrder wraps from zero and
	// selectionID keeps the 1-based value it was given.
	d.presentationOrder = toZeroBased(d.presentationOrder)
	return nil
}

// Source returns the string the descriptor was parsed from.
func (d *Descriptor) Source() string {
	return d.source
}

func (d *Descriptor) TopLevelType() TopLevelType {
	return d.topLevelType
}

// TopLevelName is the route name; it is empty unless TopLevelType is
// NamedRoute.
func (d *Descriptor) TopLevelName() string {
	return d.topLevelName
}

func (d *Descriptor) Subtype() Subtype {
	return d.subtype
}

// Stripable reports whether the object was addressed by position.
func (d *Descriptor) Stripable() bool {
	return d.stripable
}

func (d *Descriptor) Banked() bool {
	return d.banked
}

func (d *Descriptor) BankOffset() uint32 {
	return d.bankOffset
}

// WithBankOffset returns a copy of d that adds off to banked positions.
func (d *Descriptor) WithBankOffset(off uint32) *Descriptor {
	c := *d
	c.bankOffset = off
	return &c
}

// RawPresentationOrder is the 0-based position as parsed, without the
// bank offset.
func (d *Descriptor) RawPresentationOrder() uint32 {
	return d.presentationOrder
}

// RawSelectionID is the selection slot as parsed, without the bank offset.
func (d *Descriptor) RawSelectionID() uint32 {
	return d.selectionID
}

// PresentationOrder is the 0-based position, shifted by the bank offset
// when the slot was bank-relative.
func (d *Descriptor) PresentationOrder() uint32 {
	if d.banked {
		return d.presentationOrder + d.bankOffset
	}
	return d.presentationOrder
}

// SelectionID is the selection slot, shifted by the bank offset when the
// slot was bank-relative.
func (d *Descriptor) SelectionID() uint32 {
	if d.banked {
		return d.selectionID + d.bankOffset
	}
	return d.selectionID
}

// Target returns the n-th numeric sub-target, or 0 if there is none.
func (d *Descriptor) Target(n int) uint32 {
	if n >= 0 && n < len(d.target) {
		return d.target[n]
	}
	return 0
}

// Targets returns a copy of all sub-targets.
func (d *Descriptor) Targets() []uint32 {
	if len(d.target) == 0 {
		return nil
	}
	out := make([]uint32, len(d.target))
	copy(out, d.target)
	return out
}

func (d *Descriptor) String() string {
	var sb strings.Builder
	sb.WriteString(d.topLevelType.String())
	switch d.topLevelType {
	case NamedRoute:
		fmt.Fprintf(&sb, " %q", d.topLevelName)
	case SelectionCount:
		fmt.Fprintf(&sb, " selection=%d", d.SelectionID())
	case Unclassified:
	default:
		fmt.Fprintf(&sb, " order=%d", d.PresentationOrder())
	}
	if d.banked {
		sb.WriteString(" banked")
	}
	if d.subtype.IsSet() {
		sb.WriteString(" ")
		sb.WriteString(d.subtype.String())
	}
	if len(d.target) > 0 {
		fmt.Fprintf(&sb, " target=%v", d.target)
	}
	return sb.String()
}
