package league

import "github.com/Dosada05/football-dashboard/models"

// DecideWinner returns WinnerNone while either side of the score is unknown.
func DecideWinner(home, away *int) models.Winner {
	if home == nil || away == nil {
		return models.WinnerNone
	}
	switch {
	case *home > *away:
		return models.WinnerHome
	case *away > *home:
		return models.WinnerAway
	default:
		return models.WinnerDraw
	}
}
