package leaderboard

import (
	"net/http"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/export"
	"culturefest-api/internal/school"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService LeaderboardServiceAPI
}

// board builds the leaderboard, narrowed to ?tier= when given.
func (lc *LeaderboardController) board(c *gin.Context) (Board, bool) {
	b, err := lc.LeaderboardService.Build()
	if err != nil {
		apperr.Respond(c, err)
		return Board{}, false
	}
	raw := c.Query("tier")
	if raw == "" {
		return b, true
	}
	tier, err := school.ParseTier(raw)
	if err != nil {
		apperr.Respond(c, err)
		return Board{}, false
	}
	tb, _ := b.Tier(tier)
	b.Tiers = []TierBoard{tb}
	return b, true
}

func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	b, ok := lc.board(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

func (lc *LeaderboardController) ExportLeaderboard(c *gin.Context) {
	b, ok := lc.board(c)
	if !ok {
		return
	}
	export.Send(c, "leaderboard", "leaderboard", Tables(b)...)
}

// Tables lays a board out as one export table per tier.
func Tables(b Board) []*export.Table {
	cols := []string{"Rank", "School"}
	for _, cat := range b.Categories {
		cols = append(cols, cat.Name)
	}
	cols = append(cols, "Total")

	tables := make([]*export.Table, 0, len(b.Tiers))
	for _, tb := range b.Tiers {
		t := export.NewTable(string(tb.Tier), cols...)
		for _, e := range tb.Entries {
			row := []interface{}{e.Rank, e.SchoolName}
			for _, cat := range b.Categories {
				row = append(row, e.Averages[cat.ID])
			}
			t.Add(append(row, e.Total)...)
		}
		tables = append(tables, t)
	}
	return tables
}
