package registry

// Era orders encodings by modernity. It is used both to filter the
// candidate set (stage 3) and to break near-ties in favour of the
// caller's requested era (stage 10).
type Era int

const (
	ModernWeb Era = iota
	LegacyISO
	LegacyRegional
	DOS
	LegacyMac
	Mainframe

	// AllEras selects every era; it is never attached to an EncodingInfo.
	AllEras
)

func (e Era) String() string {
	switch e {
	case ModernWeb:
		return "modern-web"
	case LegacyISO:
		return "legacy-iso"
	case LegacyRegional:
		return "legacy-regional"
	case DOS:
		return "dos"
	case LegacyMac:
		return "legacy-mac"
	case Mainframe:
		return "mainframe"
	case AllEras:
		return "all"
	default:
		return "unknown-era"
	}
}

// Matches reports whether an encoding tagged with era e should be
// included when the caller asked for era want.
func (e Era) Matches(want Era) bool {
	return want == AllEras || e == want
}
