package league

import "github.com/Dosada05/football-dashboard/models"

// UniqueSeasonsByYear keeps the first season row for every year.
// TODO: drop once the upstream stops returning several season rows per year.
func UniqueSeasonsByYear(seasons []models.Season) []models.Season {
	seen := make(map[int]struct{}, len(seasons))
	out := make([]models.Season, 0, len(seasons))
	for _, s := range seasons {
		if _, ok := seen[s.Year]; ok {
			continue
		}
		seen[s.Year] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SeasonForYear finds the first season row for year.
func SeasonForYear(seasons []models.Season, year int) (models.Season, bool) {
	for _, s := range seasons {
		if s.Year == year {
			return s, true
		}
	}
	return models.Season{}, false
}
