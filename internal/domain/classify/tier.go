package classify

import "fmt"

// Tier is a qualitative difficulty bucket for a vertical jump requirement.
type Tier int

// Tiers in increasing difficulty.
const (
	Achievable Tier = iota
	Challenging
	Hard
	VeryHard
	Extreme
)

var tierNames = [...]string{ //nolint:gochecknoglobals // immutable lookup table
	Achievable:  "achievable",
	Challenging: "challenging",
	Hard:        "hard",
	VeryHard:    "veryHard",
	Extreme:     "extreme",
}

var tierDescriptions = [...]string{ //nolint:gochecknoglobals // immutable lookup table
	Achievable:  "within reach for most trained athletes",
	Challenging: "needs dedicated jump training",
	Hard:        "above-average athleticism required",
	VeryHard:    "elite leaping ability required",
	Extreme:     "beyond documented human vertical jumps; effectively impossible",
}

// Tiers lists every tier in order.
func Tiers() []Tier {
	return []Tier{Achievable, Challenging, Hard, VeryHard, Extreme}
}

func (t Tier) valid() bool { return t >= Achievable && t <= Extreme }

func (t Tier) String() string {
	if !t.valid() {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Description is a short user-facing explanation of the tier.
func (t Tier) Description() string {
	if !t.valid() {
		return ""
	}
	return tierDescriptions[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTier resolves a tier by name.
func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if name == s {
			return Tier(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}
