package league

import "github.com/Dosada05/football-dashboard/models"

const (
	qualificationPlaces = 4
	relegationPlaces    = 3
)

func InQualification(position int) bool {
	return position >= 1 && position <= qualificationPlaces
}

// InRelegation reports whether position is among the bottom three rows of a
// table with total rows.
func InRelegation(position, total int) bool {
	return total > 0 && position >= total-(relegationPlaces-1)
}

// BandFor picks the single display band. Qualification is checked first, so
// in tables of seven rows or fewer the overlapping rows show as qualification.
func BandFor(position, total int) models.Band {
	switch {
	case InQualification(position):
		return models.BandQualification
	case InRelegation(position, total):
		return models.BandRelegation
	default:
		return models.BandNeutral
	}
}

// PrepareStandings decorates rows in the order the server returned them.
// Rows are never re-sorted; position stays the server's rank label.
func PrepareStandings(rows []models.StandingsRow) []models.StandingsRow {
	total := len(rows)
	out := make([]models.StandingsRow, len(rows))
	for i, row := range rows {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		row.Qualification = InQualification(row.Position)
		row.Relegation = InRelegation(row.Position, total)
		row.Band = BandFor(row.Position, total)
		row.Form = ParseForm(row.RawForm)
		out[i] = row
	}
	return out
}

// PrepareTopScorers fills in non-penalty goals where the server left them out.
func PrepareTopScorers(entries []models.TopScorerEntry) []models.TopScorerEntry {
	for i := range entries {
		e := &entries[i]
		if e.NonPenaltyGoals != nil {
			continue
		}
		npg := e.Goals
		if e.Penalties != nil {
			npg -= *e.Penalties
		}
		if npg < 0 {
			npg = 0
		}
		e.NonPenaltyGoals = &npg
	}
	return entries
}
