package chroma

// GamutMode selects how a conversion handles results that fall outside the
// target space's bounds.
type GamutMode int

const (
	// GamutPreserve returns the exact transformation result, which may
	// leave channels outside their normal range.
	GamutPreserve GamutMode = iota
	// GamutClip clamps every out-of-bounds channel to its nearest bound.
	GamutClip
)

// String returns the mode's name.
func (m GamutMode) String() string {
	if m == GamutClip {
		return "clip"
	}
	return "preserve"
}
