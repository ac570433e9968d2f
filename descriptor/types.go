package descriptor

// TopLevelType is the class of mixer object a descriptor addresses.
type TopLevelType int

const (
	// Unclassified is left in place when the first path segment is not a
	// known object class.
	Unclassified TopLevelType = iota
	PresentationOrderRoute
	PresentationOrderBus
	PresentationOrderTrack
	PresentationOrderVCA
	NamedRoute
	SelectionCount
)

func (t TopLevelType) String() string {
	switch t {
	case PresentationOrderRoute:
		return "route"
	case PresentationOrderBus:
		return "bus"
	case PresentationOrderTrack:
		return "track"
	case PresentationOrderVCA:
		return "vca"
	case NamedRoute:
		return "named"
	case SelectionCount:
		return "selection"
	default:
		return "unclassified"
	}
}

// Subtype is the automatable parameter addressed within the object.
type Subtype int

const (
	NoSubtype Subtype = iota
	GainAutomation
	TrimAutomation
	SoloAutomation
	MuteAutomation
	RecEnableAutomation
	PanWidthAutomation
	PanAzimuthAutomation
	PluginAutomation
	SendLevelAutomation
	SendAzimuthAutomation
	SendEnableAutomation
	EQEnableAutomation
	EQGainAutomation
	EQFreqAutomation
	EQQAutomation
	EQShapeAutomation
	FilterFreqAutomation
	FilterSlopeAutomation
	CompressorEnableAutomation
	CompressorThresholdAutomation
	CompressorModeAutomation
	CompressorSpeedAutomation
	CompressorMakeupAutomation
)

var subtypeNames = [...]string{
	NoSubtype:                     "",
	GainAutomation:                "GainAutomation",
	TrimAutomation:                "TrimAutomation",
	SoloAutomation:                "SoloAutomation",
	MuteAutomation:                "MuteAutomation",
	RecEnableAutomation:           "RecEnableAutomation",
	PanWidthAutomation:            "PanWidthAutomation",
	PanAzimuthAutomation:          "PanAzimuthAutomation",
	PluginAutomation:              "PluginAutomation",
	SendLevelAutomation:           "SendLevelAutomation",
	SendAzimuthAutomation:         "SendAzimuthAutomation",
	SendEnableAutomation:          "SendEnableAutomation",
	EQEnableAutomation:            "EQEnableAutomation",
	EQGainAutomation:              "EQGainAutomation",
	EQFreqAutomation:              "EQFreqAutomation",
	EQQAutomation:                 "EQQAutomation",
	EQShapeAutomation:             "EQShapeAutomation",
	FilterFreqAutomation:          "FilterFreqAutomation",
	FilterSlopeAutomation:         "FilterSlopeAutomation",
	CompressorEnableAutomation:    "CompressorEnableAutomation",
	CompressorThresholdAutomation: "CompressorThresholdAutomation",
	CompressorModeAutomation:      "CompressorModeAutomation",
	CompressorSpeedAutomation:     "CompressorSpeedAutomation",
	CompressorMakeupAutomation:    "CompressorMakeupAutomation",
}

func (s Subtype) String() string {
	if s < 0 || int(s) >= len(subtypeNames) {
		return ""
	}
	return subtypeNames[s]
}

// IsSet reports whether the descriptor named a parameter at all.
func (s Subtype) IsSet() bool {
	return s != NoSubtype
}
