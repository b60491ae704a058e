package searcher

import (
	"fmt"
	"strings"
)

// Tier is the playing strength of the computer.
type Tier int

const (
	Weak     Tier = iota // uniform random legal action
	Moderate             // minimax, 2 plies
	Strong               // minimax, 4 plies
)

const (
	ModerateDepth = 2
	StrongDepth   = 4
)

func (t Tier) Depth() int {
	switch t {
	case Moderate:
		return ModerateDepth
	case Strong:
		return StrongDepth
	default:
		return 0
	}
}

func (t Tier) String() string {
	switch t {
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier accepts weak/moderate/strong and the easy/medium/hard aliases.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weak", "easy":
		return Weak, nil
	case "moderate", "medium":
		return Moderate, nil
	case "strong", "hard":
		return Strong, nil
	default:
		return Weak, fmt.Errorf("unknown tier %q", s)
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
