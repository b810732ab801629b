package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/services"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func bandMarker(b models.Band) string {
	switch b {
	case models.BandQualification:
		return "Q"
	case models.BandRelegation:
		return "R"
	default:
		return ""
	}
}

func renderStandings(w io.Writer, s *models.Standings) {
	if s == nil || len(s.Rows) == 0 {
		fmt.Fprintln(w, "no standings")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTEAM\tP\tW\tD\tL\tGF\tGA\tGD\tPTS\tFORM\t")
	for _, row := range s.Rows {
		fmt.Fprintf(tw, "%d%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t%s\t\n",
			row.Position, bandMarker(row.Band), row.TeamName,
			row.PlayedGames.Int(), row.Won.Int(), row.Draw.Int(), row.Lost.Int(),
			row.GoalsFor.Int(), row.GoalsAgainst.Int(), row.GoalDifference.Int(),
			row.Points.Int(), strings.Join(row.Form, ""))
	}
	_ = tw.Flush()
}

func standingsText(s *models.Standings) string {
	var buf bytes.Buffer
	renderStandings(&buf, s)
	return buf.String()
}

// standingsDiff prints a line diff of two rendered tables. Unchanged lines
// are indented, removed lines start with "-" and added lines with "+".
func standingsDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteByte('\n')
			}
		}
	}
	return out.String()
}

func score(home, away *int) string {
	if home == nil || away == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d", *home, *away)
}

func renderMatches(w io.Writer, list *services.MatchList) {
	if list == nil || len(list.Days) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	for i, day := range list.Days {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, day.Date)
		tw := newTable(w)
		for _, m := range day.Matches {
			ht := ""
			if m.HalfTimeHome != nil && m.HalfTimeAway != nil {
				ht = "(HT " + score(m.HalfTimeHome, m.HalfTimeAway) + ")"
			}
			fmt.Fprintf(tw, "  %d\tMD%d\t%s\t%s\t%s\t%s\t%s\t\n",
				m.ID, m.Matchday, m.HomeTeam, score(m.FullTimeHome, m.FullTimeAway), m.AwayTeam, ht, m.Status)
		}
		_ = tw.Flush()
	}
	fmt.Fprintf(w, "\n%d matches: %d completed, %d today, %d upcoming\n", list.Total,
		list.Counts[models.MatchStatusCompleted], list.Counts[models.MatchStatusToday], list.Counts[models.MatchStatusUpcoming])
}

func age(a *int) string {
	if a == nil || *a < 0 {
		return "?"
	}
	return strconv.Itoa(*a)
}

func renderPlayers(w io.Writer, list *services.PlayerList) {
	if list == nil || len(list.Players) == 0 {
		fmt.Fprintln(w, "no players")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tPOSITION\tAGE\tNATIONALITY\tTEAM\t")
	for _, p := range list.Players {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n", p.ID, p.Name, p.Position, age(p.Age), p.Nationality, p.TeamName)
	}
	_ = tw.Flush()

	counts := make([]string, 0, len(models.Positions))
	for _, pos := range models.Positions {
		counts = append(counts, fmt.Sprintf("%s %d", pos, list.PositionCounts[pos]))
	}
	fmt.Fprintf(w, "\n%d players (%s)\n", list.Total, strings.Join(counts, ", "))
}

func renderSearch(w io.Writer, r *models.SearchResults) {
	fmt.Fprintf(w, "%d results for %q\n", r.Total, r.Query)
	tw := newTable(w)
	for _, p := range r.Players {
		fmt.Fprintf(tw, "player\t%d\t%s\t%s\t\n", p.ID, p.Name, p.TeamName)
	}
	for _, t := range r.Teams {
		fmt.Fprintf(tw, "team\t%d\t%s\t%s\t\n", t.ID, t.Name, t.LeagueName)
	}
	for _, s := range r.Stadiums {
		fmt.Fprintf(tw, "stadium\t%d\t%s\t%s\t\n", s.ID, s.Name, s.Location)
	}
	for _, c := range r.Coaches {
		fmt.Fprintf(tw, "coach\t%d\t%s\t%s\t\n", c.ID, c.Name, c.TeamName)
	}
	_ = tw.Flush()
}

func renderFixtures(w io.Writer, plan *services.FixturePlan, loc *time.Location) {
	tw := newTable(w)
	fmt.Fprintln(tw, "MD\tKICKOFF\tHOME\tAWAY\t")
	for _, f := range plan.Fixtures {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t\n", f.Matchday, f.Kickoff.In(loc).Format("2006-01-02 15:04"), f.HomeTeamID, f.AwayTeamID)
	}
	_ = tw.Flush()

	if plan.DryRun {
		fmt.Fprintf(w, "\n%d fixtures (%s), preview only\n", len(plan.Fixtures), plan.Generator)
		return
	}
	fmt.Fprintf(w, "\n%d scheduled, %d failed\n", len(plan.Created), len(plan.Failed))
	for _, f := range plan.Failed {
		fmt.Fprintf(w, "  MD%d %d v %d: %s\n", f.Matchday, f.HomeTeamID, f.AwayTeamID, f.Error)
	}
}
