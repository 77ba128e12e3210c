package registration

import (
	"net/http"
	"strings"

	"culturefest-api/internal/apperr"
	"culturefest-api/internal/export"
	"culturefest-api/internal/logs"
	"culturefest-api/internal/metrics"
	"culturefest-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02 15:04"

type RegistrationController struct {
	RegistrationService RegistrationServiceAPI
	LogService          LogServicePort
}

func (rc *RegistrationController) CreateRegistration(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := rc.RegistrationService.Create(sub)
	metrics.Registrations.WithLabelValues("create", metrics.Outcome(err, apperr.IsValidation)).Inc()
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	rc.audit(c, "create", reg)
	c.JSON(http.StatusCreated, gin.H{
		"id":           reg.ID,
		"message":      "Registration saved. Keep this registration ID; it is the only way to view or edit your entry.",
		"registration": reg,
	})
}

func (rc *RegistrationController) UpdateRegistration(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := rc.RegistrationService.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), sub)
	metrics.Registrations.WithLabelValues("update", metrics.Outcome(err, isRejected)).Inc()
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	rc.audit(c, "update", reg)
	c.JSON(http.StatusOK, gin.H{"message": "Registration updated", "registration": reg})
}

func (rc *RegistrationController) GetRegistration(c *gin.Context) {
	reg, err := rc.RegistrationService.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (rc *RegistrationController) GetRegistrations(c *gin.Context) {
	regs, err := rc.RegistrationService.List()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": regs, "count": len(regs)})
}

func (rc *RegistrationController) ExportRegistrations(c *gin.Context) {
	regs, err := rc.RegistrationService.List()
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	export.Send(c, "registrations", "registrations", Tables(regs)...)
}

// Tables lays registrations out as a summary sheet and a participant sheet.
func Tables(regs []Registration) []*export.Table {
	summary := export.NewTable("Registrations",
		"Registration ID", "School", "Participants", "Contact", "Designation", "Mobile", "Email",
		"Account Holder", "Bank", "Account Number", "IFSC", "UPI ID", "Created", "Edited")
	people := export.NewTable("Participants", "School", "No", "Name", "ID Card")

	for _, r := range regs {
		edited := ""
		if r.EditedAt != nil {
			edited = r.EditedAt.Format(dateLayout)
		}
		summary.Add(r.ID, r.SchoolName, len(r.Participants), r.Contact.Name, r.Contact.Designation,
			r.Contact.Mobile, r.Contact.Email, r.Bank.HolderName, r.Bank.BankName, r.Bank.AccountNumber,
			r.Bank.IFSC, r.Bank.UPIID, r.CreatedAt.Format(dateLayout), edited)
		for _, p := range r.Participants {
			people.Add(r.SchoolName, p.Position, p.Name, p.IDCardURL)
		}
	}
	return []*export.Table{summary, people}
}

func (rc *RegistrationController) audit(c *gin.Context, action string, reg *Registration) {
	logs.Audit(rc.LogService, logs.SystemLog{
		Service:   "registration",
		ActorID:   logs.Ptr(middlewares.ActorID(c)),
		ActorRole: middlewares.Role(c),
		Action:    action,
		EntityID:  logs.Ptr(reg.ID),
		Message:   "registration for " + reg.SchoolName + " " + action + "d",
	}, gin.H{"school_name": reg.SchoolName, "participants": len(reg.Participants)})
}

func isRejected(err error) bool {
	return apperr.IsValidation(err) || apperr.IsNotFound(err)
}
