package types

import "fmt"

// GapTier is the spacing interval that governs how soon a topic becomes due
// again after it has been reviewed. Tiers are ordered Day < Week < Month and
// only ever advance.
type GapTier uint8

// Gap tiers. The zero value is Day.
const (
	GapDay GapTier = iota
	GapWeek
	GapMonth
)

// Text forms of the gap tiers. These are the values written to storage and
// must not change.
const (
	gapDayName   = "Day"
	gapWeekName  = "Week"
	gapMonthName = "Month"
)

// GapTiers lists every tier in escalation order.
var GapTiers = []GapTier{GapDay, GapWeek, GapMonth}

// Offset returns the number of calendar days between a review and the next
// due date for the tier.
func (g GapTier) Offset() int {
	switch g {
	case GapDay:
		return 1
	case GapWeek:
		return 7
	case GapMonth:
		return 30
	default:
		panic(fmt.Sprintf("types: unknown gap tier %d", uint8(g)))
	}
}

// Next returns the tier that follows g. Month is terminal and maps to itself.
func (g GapTier) Next() GapTier {
	switch g {
	case GapDay:
		return GapWeek
	case GapWeek, GapMonth:
		return GapMonth
	default:
		panic(fmt.Sprintf("types: unknown gap tier %d", uint8(g)))
	}
}

// Valid reports whether g is one of the defined tiers.
func (g GapTier) Valid() bool {
	return g <= GapMonth
}

func (g GapTier) String() string {
	switch g {
	case GapDay:
		return gapDayName
	case GapWeek:
		return gapWeekName
	case GapMonth:
		return gapMonthName
	default:
		return fmt.Sprintf("GapTier(%d)", uint8(g))
	}
}

// ParseGapTier converts the stored text form of a tier back into a GapTier.
// Returns ErrInvalidGapTier for anything other than Day, Week or Month.
func ParseGapTier(s string) (GapTier, error) {
	switch s {
	case gapDayName:
		return GapDay, nil
	case gapWeekName:
		return GapWeek, nil
	case gapMonthName:
		return GapMonth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGapTier, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g GapTier) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGapTier, uint8(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GapTier) UnmarshalText(text []byte) error {
	tier, err := ParseGapTier(string(text))
	if err != nil {
		return err
	}
	*g = tier
	return nil
}
