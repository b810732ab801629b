package league

import (
	"time"

	"github.com/Dosada05/football-dashboard/models"
)

// ClassifyMatch derives the display status of a match. A full-time score
// always wins over the kickoff date. The kickoff is compared by calendar
// day in now's location.
func ClassifyMatch(kickoff time.Time, hasFullTime bool, now time.Time) models.MatchStatus {
	if hasFullTime {
		return models.MatchStatusCompleted
	}
	if !kickoff.IsZero() && sameDay(kickoff.In(now.Location()), now) {
		return models.MatchStatusToday
	}
	return models.MatchStatusUpcoming
}

// Annotate recomputes Status and Winner on m in place.
func Annotate(m *models.Match, now time.Time) {
	kickoff, _ := KickoffIn(m.UTCDate, now.Location())
	m.Status = ClassifyMatch(kickoff, m.HasFullTimeScore(), now)
	m.Winner = DecideWinner(m.FullTimeHome, m.FullTimeAway)
}

func AnnotateAll(matches []models.Match, now time.Time) {
	for i := range matches {
		Annotate(&matches[i], now)
	}
}
