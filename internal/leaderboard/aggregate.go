package leaderboard

import (
	"math"
	"sort"
	"strings"

	"culturefest-api/internal/category"
	"culturefest-api/internal/school"
	"culturefest-api/internal/score"
)

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Entry struct {
	SchoolID   string             `json:"school_id"`
	SchoolName string             `json:"school_name"`
	SerialNo   *int               `json:"serial_no"`
	Averages   map[string]float64 `json:"averages"`
	Total      float64            `json:"total"`
	Rank       int                `json:"rank"`
}

type TierBoard struct {
	Tier    school.Tier `json:"tier"`
	Entries []Entry     `json:"entries"`
}

type Board struct {
	JudgeCount int           `json:"judge_count"`
	Categories []CategoryRef `json:"categories"`
	Tiers      []TierBoard   `json:"tiers"`
}

// Round2 rounds half away from zero to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Aggregate ranks every school within its tier. Each category average is the
// sum of the school's marks divided by judgeCount (at least 1), rounded once
// for display; the total is the unrounded averages summed then rounded once.
// Ties on total fall back to school name, case-insensitive, then id.
func Aggregate(schools []school.School, categories []category.Category, scores []score.Score, judgeCount int) Board {
	if judgeCount < 1 {
		judgeCount = 1
	}

	known := make(map[string]bool, len(categories))
	refs := make([]CategoryRef, 0, len(categories))
	for _, c := range categories {
		known[c.ID] = true
		refs = append(refs, CategoryRef{ID: c.ID, Name: c.Name})
	}

	sums := map[string]map[string]int{}
	for _, s := range scores {
		if !known[s.CategoryID] {
			continue
		}
		if sums[s.SchoolID] == nil {
			sums[s.SchoolID] = map[string]int{}
		}
		sums[s.SchoolID][s.CategoryID] += clamp(s.Value)
	}

	byTier := map[school.Tier][]Entry{}
	for _, sc := range schools {
		e := Entry{
			SchoolID:   sc.ID,
			SchoolName: sc.Name,
			SerialNo:   sc.SerialNo,
			Averages:   make(map[string]float64, len(categories)),
		}
		var total float64
		for _, c := range categories {
			avg := float64(sums[sc.ID][c.ID]) / float64(judgeCount)
			e.Averages[c.ID] = Round2(avg)
			total += avg
		}
		e.Total = Round2(total)
		byTier[sc.Tier] = append(byTier[sc.Tier], e)
	}

	board := Board{JudgeCount: judgeCount, Categories: refs}
	for _, tier := range school.Tiers() {
		entries := byTier[tier]
		rank(entries)
		if entries == nil {
			entries = []Entry{}
		}
		board.Tiers = append(board.Tiers, TierBoard{Tier: tier, Entries: entries})
	}
	return board
}

func rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		an, bn := strings.ToLower(a.SchoolName), strings.ToLower(b.SchoolName)
		if an != bn {
			return an < bn
		}
		return a.SchoolID < b.SchoolID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

func clamp(v int) int {
	switch {
	case v < score.MinScore:
		return score.MinScore
	case v > score.MaxScore:
		return score.MaxScore
	}
	return v
}

// Tier returns the board for one tier.
func (b Board) Tier(t school.Tier) (TierBoard, bool) {
	for _, tb := range b.Tiers {
		if tb.Tier == t {
			return tb, true
		}
	}
	return TierBoard{}, false
}
