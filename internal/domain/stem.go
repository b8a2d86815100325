package domain

// stemEpoch is 1900-01-31, a 庚 day.
var stemEpoch = MustBirthDate(1900, 1, 31)

const epochStem = 6

// StemIndex returns the day-stem index in [0, StemCount) for d.
// Dates before the epoch wrap around the cycle like any other.
func StemIndex(d BirthDate) int {
	idx := (d.DaysSince(stemEpoch) + epochStem) % StemCount
	if idx < 0 {
		idx += StemCount
	}
	return idx
}

// Diagnose maps d to its archetype.
func Diagnose(d BirthDate) Diagnosis {
	return Diagnosis{
		Date:      d,
		Archetype: Lookup(StemIndex(d)),
	}
}
