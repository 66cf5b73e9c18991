package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nhl-watchability-service/internal/config"
	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/output"
	"nhl-watchability-service/internal/providers"
	"nhl-watchability-service/internal/report"
	"nhl-watchability-service/internal/testutil"
	"nhl-watchability-service/internal/viewing"
)

func testConfig() config.Config {
	return config.Config{
		Provider:            config.ProviderFixture,
		FetchRetryAttempts:  1,
		TeamConcurrency:     2,
		TimezoneConcurrency: 4,
		TopN:                5,
		Roster: []domain.Team{
			{ID: 6, Code: "BOS"},
			{ID: 10, Code: "TOR"},
		},
		Windows: viewing.DefaultWindows(),
	}
}

func newTestRunner(cfg config.Config, provider providers.ScheduleProvider) (*Runner, *bytes.Buffer) {
	logger, _ := testutil.NewBufferLogger()
	r := newRunnerWithProvider(cfg, logger, provider)

	var out bytes.Buffer
	r.summary = report.NewSummary(&out, false)
	return r, &out
}

func TestRunPrintsAllTwentyFiveTimezones(t *testing.T) {
	provider := testutil.MapProvider{Schedules: map[string]domain.ParsedSchedule{
		"TOR": testutil.Schedule("2025-01-06T23:00:00Z"),
		"BOS": testutil.Schedule("2025-01-06T23:00:00Z", "2025-01-11T18:00:00Z"),
	}}
	r, out := newTestRunner(testConfig(), provider)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	for _, label := range []string{"UTC-12:", "UTC+0:", "UTC+12:"} {
		if !strings.Contains(text, label) {
			t.Fatalf("summary missing %s:\n%s", label, text)
		}
	}
	if !strings.Contains(text, "TOR") || !strings.Contains(text, "BOS") {
		t.Fatalf("summary missing teams:\n%s", text)
	}
}

func TestRunWritesResultsArtifact(t *testing.T) {
	cfg := testConfig()
	cfg.ResultsPath = filepath.Join(t.TempDir(), "leaderboard.json")

	provider := testutil.GoodProvider{Schedule: testutil.Schedule("2025-01-06T23:00:00Z")}
	r, _ := newTestRunner(cfg, provider)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(cfg.ResultsPath)
	if err != nil {
		t.Fatalf("results artifact missing: %v", err)
	}
	var result output.Result
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(result.Timezones) != 25 {
		t.Fatalf("expected 25 timezones in the artifact, got %d", len(result.Timezones))
	}
}

func TestRunAbsorbsProviderFailures(t *testing.T) {
	provider := testutil.ErrProvider{Err: context.DeadlineExceeded}
	r, out := newTestRunner(testConfig(), provider)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run should absorb fetch failures, got %v", err)
	}
	if !strings.Contains(out.String(), "UTC+0:") {
		t.Fatalf("summary should still cover every timezone:\n%s", out.String())
	}
}

func TestRunReturnsErrorWhenCancelledBeforeWarm(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := testutil.GoodProvider{Schedule: testutil.Schedule("2025-01-06T23:00:00Z")}
	r, _ := newTestRunner(testConfig(), provider)

	if err := r.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRunWithFixtureProviderEndToEnd(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	r := New(testConfig(), logger)

	var out bytes.Buffer
	r.summary = report.NewSummary(&out, false)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "NHL viewing schedule summary") {
		t.Fatalf("missing header:\n%s", out.String())
	}
}
