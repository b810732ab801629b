package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/football-dashboard/live"
)

type recordingBroadcaster struct {
	messages []live.Message
}

func (r *recordingBroadcaster) BroadcastAll(msg live.Message) {
	r.messages = append(r.messages, msg)
}

func TestRolloverTask(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := func() time.Time { return time.Date(2025, 3, 16, 0, 0, 5, 0, loc) }
	b := &recordingBroadcaster{}

	rolloverTask(b, now)()

	if len(b.messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(b.messages))
	}
	msg := b.messages[0]
	if msg.Type != live.TypeDayRollover {
		t.Errorf("Type = %q, want %q", msg.Type, live.TypeDayRollover)
	}
	payload, ok := msg.Payload.(RolloverPayload)
	if !ok || payload.Date != "2025-03-16" {
		t.Errorf("Payload = %#v", msg.Payload)
	}
}

func TestAddJobValidation(t *testing.T) {
	s, err := New(time.UTC)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Stop() })

	tests := []struct {
		name     string
		job      string
		cron     string
		wantErr  error
		wantFail bool
	}{
		{name: "valid", job: "nightly", cron: "0 0 * * *"},
		{name: "empty name", job: " ", cron: "0 0 * * *", wantErr: ErrEmptyJobName},
		{name: "empty cron", job: "nightly", cron: "", wantErr: ErrEmptyCronExpr},
		{name: "bad cron", job: "nightly", cron: "every day", wantFail: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddJob(tt.job, tt.cron, func() {})
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddJob() error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantFail:
				if err == nil {
					t.Fatal("AddJob() accepted an invalid cron expression")
				}
			default:
				if err != nil {
					t.Fatalf("AddJob() error = %v", err)
				}
			}
		})
	}
}

func TestRegisterDayRollover(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Stop() })

	job, err := RegisterDayRollover(s, "0 0 * * *", &recordingBroadcaster{}, nil)
	if err != nil {
		t.Fatalf("RegisterDayRollover() error = %v", err)
	}
	if job.Name() != DayRolloverJob {
		t.Errorf("job name = %q", job.Name())
	}
}

func TestNilService(t *testing.T) {
	var s *Service
	if _, err := s.AddJob("x", "* * * * *", func() {}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("AddJob on nil service: %v", err)
	}
	if err := s.Stop(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Stop on nil service: %v", err)
	}
}
