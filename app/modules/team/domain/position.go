package teamdomain

import (
	"encoding/json"
	"fmt"
)

// Position is a player's playing position.
type Position string

const (
	Goalkeeper Position = "GK"
	Defender   Position = "DF"
	Midfielder Position = "MD"
	Attacker   Position = "AT"
)

// Positions lists every position in rating order.
var Positions = []Position{Goalkeeper, Defender, Midfielder, Attacker}

// positionWeights is the autofill distribution of natural positions.
var positionWeights = []float64{0.05, 0.4, 0.35, 0.2}

// IsValid reports whether p is one of the four known positions.
func (p Position) IsValid() bool {
	switch p {
	case Goalkeeper, Defender, Midfielder, Attacker:
		return true
	default:
		return false
	}
}

func (p Position) String() string {
	return string(p)
}

// ParsePosition accepts the short code or the full position name.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "GK", "Goalkeeper", "goalkeeper":
		return Goalkeeper, nil
	case "DF", "Defender", "defender":
		return Defender, nil
	case "MD", "MF", "Midfielder", "midfielder":
		return Midfielder, nil
	case "AT", "FW", "Attacker", "attacker":
		return Attacker, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = ""
		return nil
	}
	parsed, err := ParsePosition(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
