// Command footballctl reads and administers the league from a terminal. It
// talks to the league API directly and prints the same views the dashboard
// serves.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/fixtures"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
	"github.com/Dosada05/football-dashboard/services"
	"github.com/Dosada05/football-dashboard/views"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type app struct {
	apiURL   string
	userID   string
	timeout  time.Duration
	timezone string
	asJSON   bool
	verbose  bool

	loc    *time.Location
	client *apiclient.Client
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (a *app) setup() error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	loc := time.Local
	if a.timezone != "" {
		var err error
		if loc, err = time.LoadLocation(a.timezone); err != nil {
			return fmt.Errorf("invalid --tz: %w", err)
		}
	}
	a.loc = loc

	client, err := apiclient.New(apiclient.Config{
		BaseURL: a.apiURL,
		UserID:  a.userID,
		Timeout: a.timeout,
	})
	if err != nil {
		return err
	}
	a.client = client
	return nil
}

func (a *app) clock() services.Clock {
	return services.SystemClock(a.loc)
}

func (a *app) print(w io.Writer, v any, text func(io.Writer)) error {
	if !a.asJSON {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaultTimeout, err := strconv.Atoi(envOr("REQUEST_TIMEOUT_SECONDS", "15"))
	if err != nil {
		defaultTimeout = 15
	}

	root := &cobra.Command{
		Use:           "footballctl",
		Short:         "Browse and administer the football league",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.apiURL, "api", envOr("API_BASE_URL", "http://localhost:5000"), "League API base URL")
	pf.StringVar(&a.userID, "user", envOr("DEV_USER_ID", apiclient.DefaultUserID), "Identity sent as X-User-Id")
	pf.DurationVar(&a.timeout, "timeout", time.Duration(defaultTimeout)*time.Second, "Per-request timeout")
	pf.StringVar(&a.timezone, "tz", os.Getenv("TIMEZONE"), "Time zone that decides which matches are today")
	pf.BoolVar(&a.asJSON, "json", false, "Print JSON instead of text")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Log requests to stderr")

	root.AddCommand(
		standingsCmd(a),
		recomputeCmd(a),
		matchesCmd(a),
		playersCmd(a),
		searchCmd(a),
		fixturesCmd(a),
	)
	return root
}

func standingsCmd(a *app) *cobra.Command {
	var leagueID, seasonID int
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Show a league table with qualification and relegation bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewLeagueService(repositories.NewAPILeagueRepository(a.client), nil)
			table, err := svc.GetStandings(cmd.Context(), leagueID, seasonID)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), table, func(w io.Writer) { renderStandings(w, table) })
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", 0, "League ID")
	cmd.Flags().IntVar(&seasonID, "season", 0, "Season ID")
	_ = cmd.MarkFlagRequired("league")
	_ = cmd.MarkFlagRequired("season")
	return cmd
}

func recomputeCmd(a *app) *cobra.Command {
	var (
		input    services.RecomputeInput
		showDiff bool
	)
	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Rebuild a league table from completed matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewLeagueService(repositories.NewAPILeagueRepository(a.client), nil)
			result, err := svc.RecomputeStandings(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), result, func(w io.Writer) {
				if !showDiff {
					renderStandings(w, result.After)
					return
				}
				fmt.Fprint(w, standingsDiff(standingsText(result.Before), standingsText(result.After)))
			})
		},
	}
	cmd.Flags().IntVar(&input.LeagueID, "league", 0, "League ID")
	cmd.Flags().IntVar(&input.SeasonID, "season", 0, "Season ID")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show what changed instead of the new table")
	return cmd
}

func matchesCmd(a *app) *cobra.Command {
	var (
		filter services.MatchListInput
		status string
	)
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List matches grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := a.matchesView(cmd.Context())
			defer view.Close()

			filter.Status = repositories.MatchListStatus(status)
			list, err := view.Load(filter)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), list, func(w io.Writer) { renderMatches(w, list) })
		},
	}
	addMatchFilterFlags(cmd, &filter, &status)
	cmd.AddCommand(scoreCmd(a))
	return cmd
}

func addMatchFilterFlags(cmd *cobra.Command, filter *services.MatchListInput, status *string) {
	f := cmd.Flags()
	f.StringVar(status, "status", "all", "all, upcoming, past or today")
	f.IntVar(&filter.LeagueID, "league", 0, "League ID")
	f.IntVar(&filter.TeamID, "team", 0, "Team ID")
	f.IntVar(&filter.SeasonID, "season", 0, "Season ID")
	f.IntVar(&filter.Matchday, "matchday", 0, "Matchday")
	f.IntVar(&filter.Limit, "limit", services.DefaultMatchLimit, "Maximum number of matches")
}

func (a *app) matchesView(ctx context.Context) *views.ManageMatchesView {
	svc := services.NewMatchService(repositories.NewAPIMatchRepository(a.client), nil, a.clock())
	return views.NewManageMatchesView(ctx, svc)
}

func scoreCmd(a *app) *cobra.Command {
	var (
		filter   services.MatchListInput
		status   string
		fullHome int
		fullAway int
		halfHome int
		halfAway int
	)
	cmd := &cobra.Command{
		Use:   "score <match-id>",
		Short: "Enter a final score, then list the matches again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid match id %q", args[0])
			}
			input := services.ScoreInput{FullTimeHome: &fullHome, FullTimeAway: &fullAway}
			if cmd.Flags().Changed("ht-home") || cmd.Flags().Changed("ht-away") {
				input.HalfTimeHome, input.HalfTimeAway = &halfHome, &halfAway
			}

			view := a.matchesView(cmd.Context())
			defer view.Close()

			filter.Status = repositories.MatchListStatus(status)
			if _, err := view.Load(filter); err != nil {
				return err
			}
			result, err := view.SetScore(id, input)
			if err != nil {
				return err
			}
			list, stale := view.Current()
			return a.print(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintln(w, result.Message)
				if stale {
					fmt.Fprintln(w, "(match list could not be reloaded)")
				}
				renderMatches(w, list)
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&fullHome, "home", 0, "Full-time home goals")
	f.IntVar(&fullAway, "away", 0, "Full-time away goals")
	f.IntVar(&halfHome, "ht-home", 0, "Half-time home goals (default 0)")
	f.IntVar(&halfAway, "ht-away", 0, "Half-time away goals (default 0)")
	_ = cmd.MarkFlagRequired("home")
	_ = cmd.MarkFlagRequired("away")
	addMatchFilterFlags(cmd, &filter, &status)
	return cmd
}

func playersCmd(a *app) *cobra.Command {
	var (
		query    services.PlayerQuery
		position string
		search   string
	)
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players with age and position counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewPlayerService(repositories.NewAPIPlayerRepository(a.client), nil, a.clock())
			view := views.NewPlayersView(cmd.Context(), svc)
			defer view.Close()

			query.Position = models.Position(position)
			if _, err := view.Load(query); err != nil {
				return err
			}
			list := view.SetSearch(search)
			return a.print(cmd.OutOrStdout(), list, func(w io.Writer) { renderPlayers(w, list) })
		},
	}
	f := cmd.Flags()
	f.IntVar(&query.TeamID, "team", 0, "Team ID")
	f.IntVar(&query.LeagueID, "league", 0, "League ID")
	f.StringVar(&position, "position", "", "Goalkeeper, Defender, Midfielder or Forward")
	f.StringVar(&search, "search", "", "Name or nationality filter, applied locally")
	return cmd
}

func searchCmd(a *app) *cobra.Command {
	var scope string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search players, teams, stadiums and coaches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewSearchService(repositories.NewAPISearchRepository(a.client), a.clock())
			view := views.NewSearchView(cmd.Context(), svc)
			defer view.Close()

			results, err := view.Search(args[0], scope)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), results, func(w io.Writer) { renderSearch(w, results) })
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "all", "all, players, teams, stadiums or coaches")
	return cmd
}

func fixturesCmd(a *app) *cobra.Command {
	var (
		input  services.FixtureInput
		commit bool
	)
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Generate a round-robin season; previews unless --commit is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewFixtureService(
				fixtures.NewRoundRobinGenerator(),
				repositories.NewAPITeamRepository(a.client),
				repositories.NewAPIMatchRepository(a.client),
				nil,
			)
			input.DryRun = !commit
			plan, err := svc.Generate(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), plan, func(w io.Writer) { renderFixtures(w, plan, a.loc) })
		},
	}
	f := cmd.Flags()
	f.IntVar(&input.LeagueID, "league", 0, "League ID")
	f.IntVar(&input.SeasonID, "season", 0, "Season ID")
	f.IntSliceVar(&input.TeamIDs, "teams", nil, "Team IDs (default: every team of the league)")
	f.StringVar(&input.FirstKickoff, "first-kickoff", "", "Kickoff of matchday 1, e.g. 2025-08-16T15:00:00Z")
	f.IntVar(&input.IntervalDays, "interval-days", 7, "Days between matchdays")
	f.BoolVar(&input.DoubleRound, "double", false, "Add the return leg")
	f.BoolVar(&commit, "commit", false, "Schedule the fixtures through the league API")
	return cmd
}

// describeError turns validation failures into one line per field.
func describeError(err error) string {
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, field := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", field, verr.Fields[field])
	}
	return b.String()
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		stop()
		os.Exit(1)
	}
}
