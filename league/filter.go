package league

import (
	"strings"

	"github.com/Dosada05/football-dashboard/models"
)

// FilterPlayers narrows players by a case-insensitive substring of name or
// nationality. An empty text returns the input unchanged.
func FilterPlayers(players []models.Player, text string) []models.Player {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return players
	}
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Nationality), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterTeams matches team name, stadium or league.
func FilterTeams(teams []models.Team, text string) []models.Team {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return teams
	}
	out := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.StadiumName), needle) ||
			strings.Contains(strings.ToLower(t.LeagueName), needle) {
			out = append(out, t)
		}
	}
	return out
}

// FilterUsers matches username or email.
func FilterUsers(users []models.User, text string) []models.User {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return users
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

func CountByPosition(players []models.Player) map[models.Position]int {
	counts := make(map[models.Position]int, len(models.Positions))
	for _, pos := range models.Positions {
		counts[pos] = 0
	}
	for _, p := range players {
		counts[p.Position]++
	}
	return counts
}

// TeamsInLeague narrows a team list to one league; leagueID 0 keeps all.
func TeamsInLeague(teams []models.Team, leagueID int) []models.Team {
	if leagueID == 0 {
		return teams
	}
	out := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if t.LeagueID != nil && *t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	return out
}
