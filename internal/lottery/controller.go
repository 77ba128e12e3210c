package lottery

import (
	"net/http"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/metrics"
	"culturefest-api/internal/middlewares"
	"culturefest-api/internal/school"

	"github.com/gin-gonic/gin"
)

type LotteryController struct {
	LotteryService LotteryServiceAPI
	LogService     LogServicePort
}

func (lc *LotteryController) Draw(c *gin.Context) {
	var in DrawInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tier, err := school.ParseTier(in.Tier)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	order, err := lc.LotteryService.Preview(tier)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	metrics.LotteryDraws.WithLabelValues(string(tier)).Inc()
	c.JSON(http.StatusOK, gin.H{"tier": tier, "order": order, "committed": false})
}

func (lc *LotteryController) Commit(c *gin.Context) {
	var in CommitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tier, err := school.ParseTier(in.Tier)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	order, err := lc.LotteryService.Commit(tier, in.Order)
	metrics.LotteryCommits.WithLabelValues(metrics.Outcome(err, apperr.IsValidation)).Inc()
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	logs.Audit(lc.LogService, logs.SystemLog{
		Service:   "lottery",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    "commit",
		EntityID:  logs.Ptr(string(tier)),
		Message:   "performance order saved for " + string(tier),
	}, order)
	c.JSON(http.StatusOK, gin.H{"tier": tier, "order": order, "committed": true})
}
