package cracker

import "fmt"

// Mode selects which concatenation orders of a password/salt pair are tried.
type Mode int

const (
	// ModeBoth tries password+salt and then salt+password for every pair.
	ModeBoth Mode = iota
	// ModePasswordSalt tries password+salt only.
	ModePasswordSalt
	// ModeSaltPassword tries salt+password only.
	ModeSaltPassword
)

// ParseMode maps the CLI spelling of a mode to its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "both":
		return ModeBoth, nil
	case "ps":
		return ModePasswordSalt, nil
	case "sp":
		return ModeSaltPassword, nil
	}
	return 0, fmt.Errorf("invalid mode: %s (want ps, sp or both)", s)
}

func (m Mode) String() string {
	switch m {
	case ModePasswordSalt:
		return "ps"
	case ModeSaltPassword:
		return "sp"
	default:
		return "both"
	}
}

// appendOrders appends the concatenations m selects for one pair. Under
// ModeBoth the password+salt form comes first, so when both orders would
// match it is the one reported.
func (m Mode) appendOrders(dst []string, password, salt string) []string {
	switch m {
	case ModePasswordSalt:
		return append(dst, password+salt)
	case ModeSaltPassword:
		return append(dst, salt+password)
	default:
		return append(dst, password+salt, salt+password)
	}
}
