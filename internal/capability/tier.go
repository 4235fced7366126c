package capability

import (
	"fmt"
	"strings"
)

// Tier is the coarse performance classification of a device.
type Tier int

const (
	TierNone Tier = iota
	TierLow
	TierMedium
	TierHigh
)

var tierNames = [...]string{
	TierNone:   "none",
	TierLow:    "low",
	TierMedium: "medium",
	TierHigh:   "high",
}

// Tiers lists every tier from lowest to highest.
func Tiers() []Tier {
	return []Tier{TierNone, TierLow, TierMedium, TierHigh}
}

func (t Tier) String() string {
	if t < TierNone || t > TierHigh {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return TierNone, fmt.Errorf("unknown tier: %q", s)
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
