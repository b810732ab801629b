package scheduler

import (
	"time"

	"github.com/Dosada05/football-dashboard/live"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const DayRolloverJob = "day-rollover"

// Broadcaster delivers a message to every connected dashboard.
type Broadcaster interface {
	BroadcastAll(msg live.Message)
}

// RolloverPayload tells clients which day is now "today". Match status is
// derived from the calendar day, so every list must be reloaded.
type RolloverPayload struct {
	Date string `json:"date"`
}

// RegisterDayRollover adds the job that announces a new calendar day.
func RegisterDayRollover(s *Service, cronExpr string, b Broadcaster, now func() time.Time) (gocron.Job, error) {
	return s.AddJob(DayRolloverJob, cronExpr, rolloverTask(b, now))
}

func rolloverTask(b Broadcaster, now func() time.Time) func() {
	if now == nil {
		now = time.Now
	}
	return func() {
		day := now().Format(time.DateOnly)
		b.BroadcastAll(live.Message{
			Type:    live.TypeDayRollover,
			Payload: RolloverPayload{Date: day},
		})
		log.Info().Str("date", day).Msg("day rollover broadcast")
	}
}
