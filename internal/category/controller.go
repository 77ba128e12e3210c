package category

import (
	"net/http"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService CategoryServiceAPI
	LogService      LogServicePort
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.CategoryService.List()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := cc.CategoryService.Create(in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	cc.audit(c, "create", cat)
	c.JSON(http.StatusCreated, cat)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := cc.CategoryService.Update(c.Param("id"), in)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	cc.audit(c, "update", cat)
	c.JSON(http.StatusOK, cat)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	cat, err := cc.CategoryService.Delete(c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	cc.audit(c, "delete", cat)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (cc *CategoryController) audit(c *gin.Context, action string, cat *Category) {
	logs.Audit(cc.LogService, logs.SystemLog{
		Service:   "category",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    action,
		EntityID:  logs.Ptr(cat.ID),
		Message:   "category " + cat.Name + " " + action + "d",
	}, cat)
}
