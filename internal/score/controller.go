package score

import (
	"fmt"
	"net/http"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/metrics"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	ScoreService ScoreServiceAPI
	LogService   LogServicePort
	Publisher    BoardPublisher
}

// judgeScope resolves which judge a request acts for. Judges are pinned to
// their own id; organizers may name any judge.
func judgeScope(c *gin.Context, requested string) (string, bool) {
	if middlewares.Role(c) != middlewares.RoleJudge {
		return requested, true
	}
	own := middlewares.JudgeID(c)
	if requested != "" && requested != own {
		c.JSON(http.StatusForbidden, gin.H{"error": "judges may only access their own scores"})
		return "", false
	}
	return own, true
}

func (sc *ScoreController) GetScores(c *gin.Context) {
	judgeID, ok := judgeScope(c, c.Query("judge_id"))
	if !ok {
		return
	}

	var (
		scores []Score
		err    error
	)
	if judgeID == "" {
		scores, err = sc.ScoreService.All()
	} else {
		scores, err = sc.ScoreService.ListByJudge(judgeID)
	}
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (sc *ScoreController) SubmitScores(c *gin.Context) {
	var in BatchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	judgeID, ok := judgeScope(c, in.JudgeID)
	if !ok {
		return
	}

	saved, err := sc.ScoreService.SubmitBatch(judgeID, in.Entries)
	metrics.ScoresSubmitted.WithLabelValues(metrics.Outcome(err, isRejected)).Inc()
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	logs.Audit(sc.LogService, logs.SystemLog{
		Service:   "score",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    "submit",
		EntityID:  logs.Ptr(judgeID),
		Message:   fmt.Sprintf("%d scores saved", len(saved)),
	}, saved)

	if sc.Publisher != nil {
		sc.Publisher.PublishBoard()
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scores saved", "scores": saved})
}

func isRejected(err error) bool {
	return apperr.IsValidation(err) || apperr.IsNotFound(err)
}
