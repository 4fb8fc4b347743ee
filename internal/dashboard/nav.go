package dashboard

import (
	"fmt"
)

// NavError marks a bad trail or transition, as opposed to a storage
// failure.
type NavError string

func (e NavError) Error() string { return string(e) }

// Level tags the variant of a navigation State. Each level owns its
// payload fields: Villages carries nothing, Households carries the
// village name, Residents carries the household id as well.
type Level int

const (
	LevelVillages Level = iota
	LevelHouseholds
	LevelResidents
)

func (l Level) String() string {
	switch l {
	case LevelVillages:
		return "villages"
	case LevelHouseholds:
		return "households"
	case LevelResidents:
		return "residents"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// State is one position in the drill-down. Transitions go through the
// methods below; a hand-built State is checked with Validate before use.
type State struct {
	Level       Level  `json:"level"`
	Village     string `json:"village,omitempty"`
	HouseholdID uint   `json:"household_id,omitempty"`
}

func Root() State {
	return State{Level: LevelVillages}
}

func (s State) Validate() error {
	switch s.Level {
	case LevelVillages:
		if s.Village != "" || s.HouseholdID != 0 {
			return fmt.Errorf("villages level carries no payload")
		}
	case LevelHouseholds:
		if s.Village == "" {
			return fmt.Errorf("households level requires a village")
		}
		if s.HouseholdID != 0 {
			return fmt.Errorf("households level carries no household id")
		}
	case LevelResidents:
		if s.Village == "" || s.HouseholdID == 0 {
			return fmt.Errorf("residents level requires a village and household id")
		}
	default:
		return fmt.Errorf("unknown level %d", int(s.Level))
	}
	return nil
}

func (s State) DrillToVillage(village string) (State, error) {
	if s.Level != LevelVillages {
		return s, fmt.Errorf("cannot drill into a village from %s", s.Level)
	}
	if village == "" {
		return s, fmt.Errorf("village is required")
	}
	return State{Level: LevelHouseholds, Village: village}, nil
}

func (s State) DrillToHousehold(householdID uint) (State, error) {
	if s.Level != LevelHouseholds {
		return s, fmt.Errorf("cannot drill into a household from %s", s.Level)
	}
	if householdID == 0 {
		return s, fmt.Errorf("household id is required")
	}
	return State{Level: LevelResidents, Village: s.Village, HouseholdID: householdID}, nil
}

// Back pops one level; at the root it stays put.
func (s State) Back() State {
	switch s.Level {
	case LevelResidents:
		return State{Level: LevelHouseholds, Village: s.Village}
	case LevelHouseholds:
		return Root()
	default:
		return Root()
	}
}

// Breadcrumbs renders the trail down to the current frame, one label
// per level.
func (s State) Breadcrumbs() []string {
	crumbs := []string{"Villages"}
	if s.Level >= LevelHouseholds {
		crumbs = append(crumbs, s.Village)
	}
	if s.Level >= LevelResidents {
		crumbs = append(crumbs, fmt.Sprintf("Household #%d", s.HouseholdID))
	}
	return crumbs
}

// JumpTo truncates the trail to the breadcrumb at index: 0 is always
// the villages root.
func (s State) JumpTo(index int) (State, error) {
	crumbs := s.Breadcrumbs()
	if index < 0 || index >= len(crumbs) {
		return s, fmt.Errorf("breadcrumb index %d out of range", index)
	}
	switch index {
	case 0:
		return Root(), nil
	case 1:
		return State{Level: LevelHouseholds, Village: s.Village}, nil
	default:
		return s, nil
	}
}
