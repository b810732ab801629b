package routes

import (
	"net/http"

	_ "github.com/Dosada05/football-dashboard/docs"
	"github.com/Dosada05/football-dashboard/handlers"
	"github.com/Dosada05/football-dashboard/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	League    *handlers.LeagueHandler
	Team      *handlers.TeamHandler
	Player    *handlers.PlayerHandler
	Match     *handlers.MatchHandler
	Search    *handlers.SearchHandler
	User      *handlers.UserHandler
	Reference *handlers.ReferenceHandler
	Dashboard *handlers.DashboardHandler
	Fixture   *handlers.FixtureHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	AllowedOrigins []string
	Identity       middleware.IdentityConfig
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdentityHeader, middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", handlers.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/{room}", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Identity(opts.Identity))

		r.Route("/api", func(r chi.Router) {
			r.Get("/dashboard", h.Dashboard.Stats)

			r.Get("/leagues", h.League.ListLeagues)
			r.Get("/leagues/{leagueID}", h.League.GetLeague)
			r.Get("/seasons", h.League.ListSeasons)
			r.Get("/standings", h.League.GetStandings)
			r.Get("/top-scorers", h.League.TopScorers)
			r.Get("/statistics/league/{leagueID}", h.League.Statistics)
			r.Get("/statistics/team/{teamID}", h.Team.TeamStatistics)

			r.Get("/teams", h.Team.ListTeams)
			r.Get("/teams/{teamID}", h.Team.GetTeam)

			r.Get("/players", h.Player.ListPlayers)
			r.Get("/players/{playerID}", h.Player.GetPlayer)

			r.Get("/matches", h.Match.ListMatches)
			r.Get("/matches/{matchID}", h.Match.GetMatch)

			r.Get("/search", h.Search.Search)
			r.Get("/search/{scope}", h.Search.SearchScope)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/reference", h.Reference.LoadAll)
				r.Get("/leagues", h.Reference.Leagues)
				r.Get("/seasons", h.Reference.Seasons)
				r.Get("/stadiums", h.Reference.Stadiums)
				r.Get("/coaches", h.Reference.Coaches)

				r.Get("/users", h.User.ListUsers)
				r.Get("/users/audit-log", h.User.AuditLog)
				r.Put("/users/{userID}/privilege", h.User.SetPrivilege)

				r.Post("/teams", h.Team.CreateTeam)
				r.Put("/teams/{teamID}", h.Team.UpdateTeam)
				r.Delete("/teams/{teamID}", h.Team.DeleteTeam)
				r.Post("/teams/{teamID}/crest", h.Team.UploadCrest)

				r.Post("/players", h.Player.CreatePlayer)
				r.Put("/players/{playerID}", h.Player.UpdatePlayer)
				r.Delete("/players/{playerID}", h.Player.DeletePlayer)

				r.Post("/matches", h.Match.CreateMatch)
				r.Put("/matches/{matchID}", h.Match.UpdateMatch)
				r.Delete("/matches/{matchID}", h.Match.DeleteMatch)
				r.Put("/matches/{matchID}/score", h.Match.UpdateScore)

				r.Post("/standings/recompute", h.League.RecomputeStandings)
				r.Post("/fixtures/generate", h.Fixture.Generate)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"the requested resource could not be found"}` + "\n"))
	})
}
