package school

import (
	"net/http"
	"strconv"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/export"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type SchoolController struct {
	SchoolService SchoolServiceAPI
	LogService    LogServicePort
}

func (sc *SchoolController) audit(c *gin.Context, action, id, message string, metadata interface{}) {
	logs.Audit(sc.LogService, logs.SystemLog{
		Service:   "school",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    action,
		EntityID:  logs.Ptr(id),
		Message:   message,
	}, metadata)
}

// tierQuery reads an optional ?tier= filter.
func tierQuery(c *gin.Context) (*Tier, error) {
	raw := c.Query("tier")
	if raw == "" {
		return nil, nil
	}
	t, err := ParseTier(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (sc *SchoolController) GetTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": Tiers()})
}

func (sc *SchoolController) GetSchools(c *gin.Context) {
	tier, err := tierQuery(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	schools, err := sc.SchoolService.List(tier)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schools": schools})
}

func (sc *SchoolController) GetSchool(c *gin.Context) {
	school, err := sc.SchoolService.Get(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, school)
}

func (sc *SchoolController) CreateSchool(c *gin.Context) {
	var in SchoolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	school, err := sc.SchoolService.Create(in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sc.audit(c, "create", school.ID, "school "+school.Name+" created", school)
	c.JSON(http.StatusCreated, school)
}

func (sc *SchoolController) UpdateSchool(c *gin.Context) {
	var in SchoolInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	school, err := sc.SchoolService.Update(c.Param("id"), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sc.audit(c, "update", school.ID, "school "+school.Name+" updated", school)
	c.JSON(http.StatusOK, school)
}

func (sc *SchoolController) DeleteSchool(c *gin.Context) {
	school, err := sc.SchoolService.Delete(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sc.audit(c, "delete", school.ID, "school "+school.Name+" deleted with its scores", school)
	c.JSON(http.StatusOK, gin.H{"message": "School deleted"})
}

func (sc *SchoolController) GetPerformanceOrder(c *gin.Context) {
	tier, err := ParseTier(c.Query("tier"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	schools, err := sc.SchoolService.PerformanceOrder(tier)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tier": tier, "schools": schools})
}

// ExportPerformanceOrder writes one table per tier in performance order,
// or only the ?tier= one.
func (sc *SchoolController) ExportPerformanceOrder(c *gin.Context) {
	only, err := tierQuery(c)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	tiers := Tiers()
	if only != nil {
		tiers = []Tier{*only}
	}

	tables := make([]*export.Table, 0, len(tiers))
	for _, tier := range tiers {
		schools, err := sc.SchoolService.PerformanceOrder(tier)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		t := export.NewTable(string(tier), "Serial No", "School")
		for _, s := range schools {
			serial := ""
			if s.SerialNo != nil {
				serial = strconv.Itoa(*s.SerialNo)
			}
			t.Add(serial, s.Name)
		}
		tables = append(tables, t)
	}
	export.Send(c, "schools", "performance_order", tables...)
}
