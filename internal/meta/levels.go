package meta

import "fmt"

// LevelRange is an inclusive window of firearm enhancement levels.
type LevelRange struct {
	Start int
	End   int
}

// The upstream tables run 1-160; these are the windows the UI offers.
var (
	LevelRanges = []LevelRange{
		{1, 30},
		{31, 60},
		{61, 90},
		{91, 120},
		{121, 160},
	}

	// DefaultLevelRange is the window most players care about (near cap).
	DefaultLevelRange = LevelRange{91, 120}

	// FullLevelRange covers every level, used for CSV export.
	FullLevelRange = LevelRange{1, 160}
)

func (r LevelRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Contains reports whether level falls inside the window.
func (r LevelRange) Contains(level int) bool {
	return level >= r.Start && level <= r.End
}

// ParseLevelRange parses "start-end" into a LevelRange.
func ParseLevelRange(s string) (LevelRange, error) {
	var r LevelRange
	if _, err := fmt.Sscanf(s, "%d-%d", &r.Start, &r.End); err != nil {
		return LevelRange{}, fmt.Errorf("invalid level range %q: %w", s, err)
	}
	if r.Start < 1 || r.End < r.Start {
		return LevelRange{}, fmt.Errorf("invalid level range %q", s)
	}
	return r, nil
}

// FirearmRows flattens a weapon's attack table into (level, type id, value)
// rows restricted to the window, preserving upstream order.
type FirearmRow struct {
	Level int
	Type  string
	Value float64
}

// FirearmRows returns the weapon's attack rows inside the window.
func (w Weapon) FirearmRows(r LevelRange) []FirearmRow {
	var rows []FirearmRow
	for _, lvl := range w.FirearmATK {
		if !r.Contains(lvl.Level) {
			continue
		}
		for _, fa := range lvl.Firearm {
			rows = append(rows, FirearmRow{
				Level: lvl.Level,
				Type:  fa.FirearmATKType,
				Value: fa.FirearmATKValue,
			})
		}
	}
	return rows
}
