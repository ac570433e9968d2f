package descriptor

import "sort"

var (
	simpleParameters = map[string]Subtype{
		"gain":         GainAutomation,
		"trim":         TrimAutomation,
		"solo":         SoloAutomation,
		"mute":         MuteAutomation,
		"recenable":    RecEnableAutomation,
		"panwidth":     PanWidthAutomation,
		"pandirection": PanAzimuthAutomation,
		"balance":      PanAzimuthAutomation,
	}

	sendParameters = map[string]Subtype{
		"gain":      SendLevelAutomation,
		"direction": SendAzimuthAutomation,
		"enable":    SendEnableAutomation,
	}

	eqParameters = map[string]Subtype{
		"enable": EQEnableAutomation,
		"gain":   EQGainAutomation,
		"freq":   EQFreqAutomation,
		"q":      EQQAutomation,
		"shape":  EQShapeAutomation,
	}

	// enable maps to the frequency control; there is no separate filter
	// enable parameter.
	filterParameters = map[string]Subtype{
		"enable": FilterFreqAutomation,
		"freq":   FilterFreqAutomation,
		"slope":  FilterSlopeAutomation,
	}

	compressorParameters = map[string]Subtype{
		"enable":    CompressorEnableAutomation,
		"threshold": CompressorThresholdAutomation,
		"mode":      CompressorModeAutomation,
		"speed":     CompressorSpeedAutomation,
		"makeup":    CompressorMakeupAutomation,
	}

	topLevelKeywords = []string{"bus", "rid", "route", "track", "vca"}
	filterSides      = []string{"hi", "lo"}
)

const (
	filterLowPass  = 0
	filterHighPass = 1
)

// resolveParameter sets the subtype and targets from path[1:]. Unknown
// parameter names are accepted and leave the subtype unset.
func (d *Descriptor) resolveParameter(input string, path, rest []string) error {
	param := path[1]

	if st, ok := simpleParameters[param]; ok {
		d.subtype = st
		return nil
	}

	switch param {
	case "plugin":
		// plugin/parameter <slot> <plugin> <param>
		if len(path) != 3 || len(rest) != 3 {
			return malformed(input, "plugin expects plugin/parameter with three arguments")
		}
		if path[2] != "parameter" {
			return malformed(input, "unknown plugin keyword %q", path[2])
		}
		d.subtype = PluginAutomation
		d.target = []uint32{atoi(rest[1]), atoi(rest[2])}

	case "send":
		// send/<gain|direction|enable> <slot> <send>
		if len(path) != 3 || len(rest) != 2 {
			return malformed(input, "send expects send/<kind> with two arguments")
		}
		st, ok := sendParameters[path[2]]
		if !ok {
			return malformed(input, "unknown send keyword %q", path[2])
		}
		d.subtype = st
		d.target = []uint32{atoi(rest[1])}

	case "eq":
		// eq/<kind>/<band> <slot> <band>
		if len(path) != 4 {
			return malformed(input, "eq expects eq/<kind>/<band>")
		}
		st, ok := eqParameters[path[2]]
		if !ok {
			return malformed(input, "unknown eq keyword %q", path[2])
		}
		if len(rest) < 2 {
			return malformed(input, "eq expects a band argument")
		}
		d.subtype = st
		d.target = []uint32{atoi(path[3]), atoi(rest[1])}

	case "filter":
		// filter/<hi|lo>/<kind> <slot> <band>
		if len(path) != 4 {
			return malformed(input, "filter expects filter/<side>/<kind>")
		}
		side := uint32(filterLowPass)
		if path[2] == "hi" {
			side = filterHighPass
		}
		st, ok := filterParameters[path[3]]
		if !ok {
			return malformed(input, "unknown filter keyword %q", path[3])
		}
		if len(rest) < 2 {
			return malformed(input, "filter expects a band argument")
		}
		d.subtype = st
		d.target = []uint32{side, atoi(rest[1])}

	case "compressor":
		if len(path) != 3 {
			return malformed(input, "compressor expects compressor/<kind>")
		}
		st, ok := compressorParameters[path[2]]
		if !ok {
			return malformed(input, "unknown compressor keyword %q", path[2])
		}
		d.subtype = st
	}

	return nil
}

// Completions lists the keywords that may follow the given leading path
// segments, sorted. It returns nil when nothing further is expected.
func Completions(segments []string) []string {
	switch len(segments) {
	case 0:
		return append([]string(nil), topLevelKeywords...)
	case 1:
		names := keys(simpleParameters)
		names = append(names, "compressor", "eq", "filter", "plugin", "send")
		sort.Strings(names)
		return names
	case 2:
		switch segments[1] {
		case "plugin":
			return []string{"parameter"}
		case "send":
			return keys(sendParameters)
		case "eq":
			return keys(eqParameters)
		case "filter":
			return append([]string(nil), filterSides...)
		case "compressor":
			return keys(compressorParameters)
		}
	case 3:
		if segments[1] == "filter" {
			return keys(filterParameters)
		}
	}
	return nil
}

func keys(m map[string]Subtype) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
