package judge

import (
	"net/http"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type JudgeController struct {
	JudgeService JudgeServiceAPI
	LogService   LogServicePort
}

func (jc *JudgeController) audit(c *gin.Context, action string, j *Judge, message string) {
	logs.Audit(jc.LogService, logs.SystemLog{
		Service:   "judge",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    action,
		EntityID:  logs.Ptr(j.ID),
		Message:   message,
	}, j)
}

func (jc *JudgeController) GetJudges(c *gin.Context) {
	judges, err := jc.JudgeService.List()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"judges": judges, "count": len(judges)})
}

func (jc *JudgeController) GetJudge(c *gin.Context) {
	j, err := jc.JudgeService.Get(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (jc *JudgeController) CreateJudge(c *gin.Context) {
	var in JudgeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := jc.JudgeService.Create(in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	jc.audit(c, "create", j, "judge "+j.Name+" added")
	c.JSON(http.StatusCreated, j)
}

func (jc *JudgeController) UpdateJudge(c *gin.Context) {
	var in JudgeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := jc.JudgeService.Update(c.Param("id"), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	jc.audit(c, "update", j, "judge "+j.Name+" updated")
	c.JSON(http.StatusOK, j)
}

func (jc *JudgeController) DeleteJudge(c *gin.Context) {
	j, err := jc.JudgeService.Delete(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	jc.audit(c, "delete", j, "judge "+j.Name+" removed with submitted scores")
	c.JSON(http.StatusOK, gin.H{"message": "Judge deleted"})
}
