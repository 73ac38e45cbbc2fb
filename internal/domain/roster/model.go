package roster

import "strings"

type PitcherRole string

const (
	PitcherRoleNone     PitcherRole = "Not a Pitcher"
	PitcherRoleStarter  PitcherRole = "Starter"
	PitcherRoleReliever PitcherRole = "Reliever"
)

// ParsePitcherRole accepts the labels the team server stores. Anything
// unrecognized, including blank, counts as a pitcher of unknown role.
func ParsePitcherRole(v string) PitcherRole {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "not a pitcher", "none", "notapitcher":
		return PitcherRoleNone
	case "starter":
		return PitcherRoleStarter
	case "reliever":
		return PitcherRoleReliever
	default:
		return PitcherRole(strings.TrimSpace(v))
	}
}

func (r PitcherRole) Pitches() bool {
	return r != PitcherRoleNone
}

type Handedness string

const (
	HandRight  Handedness = "R"
	HandLeft   Handedness = "L"
	HandSwitch Handedness = "S"
)

// Player is one roster member. Name is the identity used by lineups and rotations.
type Player struct {
	ID          int64
	Name        string
	Number      *int
	Positions   [3]string
	Bats        Handedness
	Throws      Handedness
	PitcherRole PitcherRole
}

// PreferredPosition returns the highest ranked position preference, or "".
func (p Player) PreferredPosition() string {
	for _, pos := range p.Positions {
		if pos = strings.TrimSpace(pos); pos != "" {
			return pos
		}
	}
	return ""
}
