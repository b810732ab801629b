package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dosada05/football-dashboard/models"
)

func teamDetail() *models.TeamDetail {
	return &models.TeamDetail{
		Team: models.Team{
			ID:          4,
			Name:        "Arsenal",
			LeagueID:    intPtr(1),
			StadiumID:   intPtr(2),
			FoundedYear: intPtr(1886),
		},
		Players: []models.Player{{ID: 1, DateOfBirth: strPtr("2001-09-05")}},
	}
}

func TestUploadCrestUpdatesTeam(t *testing.T) {
	teams := &fakeTeamRepo{detail: teamDetail(), teams: []models.Team{{ID: 4}}}
	uploader := &fakeUploader{}
	notifier := &recordingNotifier{}
	svc := NewTeamService(teams, uploader, notifier, fixedClock(matchNow))

	res, err := svc.UploadCrest(context.Background(), 4, strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("UploadCrest: %v", err)
	}
	if len(uploader.uploaded) != 1 || !strings.HasPrefix(uploader.uploaded[0], "crests/team-4/") || !strings.HasSuffix(uploader.uploaded[0], ".png") {
		t.Fatalf("uploaded keys = %v", uploader.uploaded)
	}
	if uploader.body.String() != "png-bytes" {
		t.Fatalf("body = %q", uploader.body.String())
	}
	got := teams.updated[0]
	if got.Name != "Arsenal" || got.LeagueID != 1 || got.StadiumID == nil || *got.StadiumID != 2 {
		t.Fatalf("payload lost existing fields: %+v", got)
	}
	if got.CrestURL == nil || *got.CrestURL != "https://cdn.example.com/"+uploader.uploaded[0] {
		t.Fatalf("crest url = %v", got.CrestURL)
	}
	if res.ID != 4 || len(res.Items) != 1 || len(notifier.sent) != 1 {
		t.Fatalf("result = %+v", res)
	}
}

func TestUploadCrestRemovesObjectWhenUpdateFails(t *testing.T) {
	teams := &fakeTeamRepo{detail: teamDetail(), updateErr: errUpstream}
	uploader := &fakeUploader{}
	svc := NewTeamService(teams, uploader, nil, fixedClock(matchNow))

	_, err := svc.UploadCrest(context.Background(), 4, strings.NewReader("x"), "image/png")
	if !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(uploader.deleted) != 1 || uploader.deleted[0] != uploader.uploaded[0] {
		t.Fatalf("deleted = %v, uploaded = %v", uploader.deleted, uploader.uploaded)
	}
}

func TestUploadCrestRejections(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{detail: teamDetail()}, nil, nil, fixedClock(matchNow))
	if _, err := svc.UploadCrest(context.Background(), 4, strings.NewReader("x"), "image/png"); !errors.Is(err, ErrUploadsDisabled) {
		t.Fatalf("no uploader: %v", err)
	}

	uploader := &fakeUploader{}
	svc = NewTeamService(&fakeTeamRepo{detail: teamDetail()}, uploader, nil, fixedClock(matchNow))
	if _, err := svc.UploadCrest(context.Background(), 4, strings.NewReader("x"), "text/plain"); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("text upload: %v", err)
	}
	if _, err := svc.UploadCrest(context.Background(), 8, strings.NewReader("x"), "image/png"); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("unknown team: %v", err)
	}
	if len(uploader.uploaded) != 0 {
		t.Fatalf("uploaded = %v", uploader.uploaded)
	}
}

func TestGetTeamFillsPlayerAges(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{detail: teamDetail()}, nil, nil, fixedClock(matchNow))
	detail, err := svc.GetTeam(context.Background(), 4)
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	if age := detail.Players[0].Age; age == nil || *age != 23 {
		t.Fatalf("age = %v", age)
	}
}

func TestCreateTeamValidation(t *testing.T) {
	svc := NewTeamService(&fakeTeamRepo{}, nil, nil, fixedClock(matchNow))
	_, err := svc.CreateTeam(context.Background(), TeamInput{Name: "New FC", CrestURL: strPtr("not a url")})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"league_id", "cresturl"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing field %q in %v", field, verr.Fields)
		}
	}
}
