package rank

import (
	"context"
	"fmt"
	"testing"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/testutil"
	"nhl-watchability-service/internal/viewing"
)

type fixedRanker struct {
	ranking domain.TeamRanking
}

func (r fixedRanker) Rank(ctx context.Context, offset int) domain.TeamRanking {
	_ = ctx
	_ = offset
	return r.ranking
}

func TestAggregateCoversAllTwentyFiveOffsets(t *testing.T) {
	ranker := fixedRanker{ranking: domain.TeamRanking{
		{Team: "TOR", ViewableCount: 3},
		{Team: "BOS", ViewableCount: 1},
	}}
	agg := NewAggregator(ranker, 4, nil, nil)

	board := agg.Aggregate(context.Background(), 5)
	if len(board) != 25 {
		t.Fatalf("expected 25 timezone entries, got %d", len(board))
	}
	for offset := MinOffset; offset <= MaxOffset; offset++ {
		label := fmt.Sprintf("UTC%+d", offset)
		counts, ok := board[label]
		if !ok {
			t.Fatalf("missing label %s", label)
		}
		if counts["TOR"] != 3 || counts["BOS"] != 1 {
			t.Fatalf("%s carries wrong counts: %v", label, counts)
		}
	}
}

func TestAggregateTruncatesToTopN(t *testing.T) {
	ranker := fixedRanker{ranking: domain.TeamRanking{
		{Team: "AAA", ViewableCount: 9},
		{Team: "BBB", ViewableCount: 7},
		{Team: "CCC", ViewableCount: 5},
		{Team: "DDD", ViewableCount: 3},
	}}
	agg := NewAggregator(ranker, 2, nil, nil)

	board := agg.Aggregate(context.Background(), 2)
	counts := board["UTC+0"]
	if len(counts) != 2 {
		t.Fatalf("expected 2 teams after truncation, got %d", len(counts))
	}
	if counts["AAA"] != 9 || counts["BBB"] != 7 {
		t.Fatalf("wrong teams survived truncation: %v", counts)
	}
	if _, ok := counts["CCC"]; ok {
		t.Fatal("CCC should have been truncated")
	}
}

func TestAggregateTopNLargerThanRoster(t *testing.T) {
	ranker := fixedRanker{ranking: domain.TeamRanking{
		{Team: "ONE", ViewableCount: 1},
	}}
	agg := NewAggregator(ranker, 1, nil, nil)

	board := agg.Aggregate(context.Background(), 50)
	if counts := board["UTC-12"]; len(counts) != 1 || counts["ONE"] != 1 {
		t.Fatalf("expected the full one-team ranking, got %v", counts)
	}
}

func TestAggregateZeroTopNUsesDefault(t *testing.T) {
	ranking := make(domain.TeamRanking, 0, 8)
	for i := 0; i < 8; i++ {
		ranking = append(ranking, domain.ViewabilityResult{
			Team:          fmt.Sprintf("T%02d", i),
			ViewableCount: 8 - i,
		})
	}
	agg := NewAggregator(fixedRanker{ranking: ranking}, 3, nil, nil)

	board := agg.Aggregate(context.Background(), 0)
	if counts := board["UTC+12"]; len(counts) != defaultTopN {
		t.Fatalf("expected default top %d, got %d", defaultTopN, len(counts))
	}
}

func TestAggregateEndToEndWithRealRanker(t *testing.T) {
	// One Monday 23:00 UTC game: viewable at -5 (18:00 local), not at +9
	// (08:00 Tuesday local).
	source := mapSource{schedules: map[string]domain.ParsedSchedule{
		"TOR": testutil.Schedule("2025-01-06T23:00:00Z"),
	}}
	ranker := NewRanker(source, testRoster("TOR"), viewing.DefaultWindows(), 1, nil)
	agg := NewAggregator(ranker, 4, nil, nil)

	board := agg.Aggregate(context.Background(), 5)
	if got := board["UTC-5"]["TOR"]; got != 1 {
		t.Fatalf("UTC-5 should show 1 viewable game, got %d", got)
	}
	if got := board["UTC+9"]["TOR"]; got != 0 {
		t.Fatalf("UTC+9 should show 0 viewable games, got %d", got)
	}
}
