package league

import (
	"time"

	"github.com/Dosada05/football-dashboard/models"
)

// GroupByDay buckets matches by kickoff calendar day in loc, keeping the
// order in which days and matches first appear.
func GroupByDay(matches []models.Match, loc *time.Location) []models.MatchDay {
	days := make([]models.MatchDay, 0)
	index := make(map[string]int)
	for _, m := range matches {
		key := "unscheduled"
		if kickoff, ok := KickoffIn(m.UTCDate, loc); ok {
			key = kickoff.Format(time.DateOnly)
		}
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, models.MatchDay{Date: key})
		}
		days[i].Matches = append(days[i].Matches, m)
	}
	return days
}

// CountByStatus tallies already annotated matches.
func CountByStatus(matches []models.Match) map[models.MatchStatus]int {
	counts := map[models.MatchStatus]int{
		models.MatchStatusCompleted: 0,
		models.MatchStatusToday:     0,
		models.MatchStatusUpcoming:  0,
	}
	for _, m := range matches {
		counts[m.Status]++
	}
	return counts
}
