package leaderboard

import (
	"math/rand/v2"
	"testing"

	"culturefest-api/internal/category"
	"culturefest-api/internal/school"
	"culturefest-api/internal/score"
)

var (
	dance   = category.Category{ID: "dance", Name: "Dance"}
	costume = category.Category{ID: "costume", Name: "Costume", Position: 1}
	theme   = category.Category{ID: "theme", Name: "Theme", Position: 2}
	cats    = []category.Category{dance, costume, theme}
)

func juniors(names ...string) []school.School {
	out := make([]school.School, len(names))
	for i, n := range names {
		out[i] = school.School{ID: "id-" + n, Name: n, Tier: school.TierJunior}
	}
	return out
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.SchoolName
	}
	return out
}

func TestAggregate_NoScoresOrdersByName(t *testing.T) {
	b := Aggregate(juniors("Charlie", "alpha", "Bravo"), cats, nil, 3)

	tb, ok := b.Tier(school.TierJunior)
	if !ok {
		t.Fatalf("junior tier missing")
	}
	got := names(tb.Entries)
	want := []string{"alpha", "Bravo", "Charlie"}
	for i := range want {
		if got[i] != want[i] || tb.Entries[i].Total != 0 || tb.Entries[i].Rank != i+1 {
			t.Fatalf("entries=%+v", tb.Entries)
		}
	}
	if len(b.Tiers) != 3 || b.Tiers[0].Tier != school.TierSenior || len(b.Tiers[0].Entries) != 0 {
		t.Fatalf("tiers=%+v", b.Tiers)
	}
}

func TestAggregate_SingleJudgeScenario(t *testing.T) {
	schools := juniors("A", "B", "C")
	scores := []score.Score{
		{JudgeID: "j1", SchoolID: "id-A", CategoryID: "dance", Value: 8},
		{JudgeID: "j1", SchoolID: "id-A", CategoryID: "costume", Value: 9},
		{JudgeID: "j1", SchoolID: "id-A", CategoryID: "theme", Value: 7},
	}
	b := Aggregate(schools, cats, scores, 1)
	tb, _ := b.Tier(school.TierJunior)

	first := tb.Entries[0]
	if first.SchoolName != "A" || first.Total != 24 || first.Rank != 1 {
		t.Fatalf("first=%+v", first)
	}
	if first.Averages["dance"] != 8 || first.Averages["theme"] != 7 {
		t.Fatalf("averages=%v", first.Averages)
	}
	if tb.Entries[1].Averages["dance"] != 0 {
		t.Fatalf("missing scores should average 0: %+v", tb.Entries[1])
	}
}

func TestAggregate_RoundsTotalFromRawAverages(t *testing.T) {
	schools := juniors("A")
	// Each category sums to 1 over 3 judges: 0.333.. rounds to 0.33, the
	// raw total is exactly 1.
	scores := []score.Score{
		{JudgeID: "j1", SchoolID: "id-A", CategoryID: "dance", Value: 1},
		{JudgeID: "j2", SchoolID: "id-A", CategoryID: "costume", Value: 1},
		{JudgeID: "j3", SchoolID: "id-A", CategoryID: "theme", Value: 1},
	}
	e := Aggregate(schools, cats, scores, 3).Tiers[1].Entries[0]
	if e.Averages["dance"] != 0.33 || e.Total != 1 {
		t.Fatalf("averages=%v total=%v", e.Averages, e.Total)
	}
}

func TestAggregate_ZeroJudgesAndOutOfRangeScores(t *testing.T) {
	schools := juniors("A")
	scores := []score.Score{
		{SchoolID: "id-A", CategoryID: "dance", Value: 40},
		{SchoolID: "id-A", CategoryID: "theme", Value: -3},
		{SchoolID: "id-A", CategoryID: "deleted", Value: 5},
	}
	b := Aggregate(schools, cats, scores, 0)
	e := b.Tiers[1].Entries[0]
	if b.JudgeCount != 1 || e.Averages["dance"] != 10 || e.Averages["theme"] != 0 || e.Total != 10 {
		t.Fatalf("board=%+v entry=%+v", b, e)
	}
	if _, ok := e.Averages["deleted"]; ok {
		t.Fatalf("unknown category leaked into averages")
	}
}

func TestAggregate_AveragesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	schools := juniors("A", "B", "C", "D")
	for round := 0; round < 50; round++ {
		judges := 1 + rng.IntN(5)
		var scores []score.Score
		for j := 0; j < judges; j++ {
			for _, s := range schools {
				for _, c := range cats {
					scores = append(scores, score.Score{
						JudgeID: string(rune('a' + j)), SchoolID: s.ID, CategoryID: c.ID, Value: rng.IntN(11),
					})
				}
			}
		}
		b := Aggregate(schools, cats, scores, judges)
		again := Aggregate(schools, cats, scores, judges)
		for i, e := range b.Tiers[1].Entries {
			for id, avg := range e.Averages {
				if avg < 0 || avg > 10 {
					t.Fatalf("round %d: %s/%s avg=%v", round, e.SchoolName, id, avg)
				}
			}
			if again.Tiers[1].Entries[i].SchoolID != e.SchoolID || again.Tiers[1].Entries[i].Total != e.Total {
				t.Fatalf("round %d: aggregation not deterministic", round)
			}
			if i > 0 && b.Tiers[1].Entries[i-1].Total < e.Total {
				t.Fatalf("round %d: not sorted by total", round)
			}
		}
	}
}
