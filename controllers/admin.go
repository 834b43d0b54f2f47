package controllers

import (
	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Admin(router *gin.Engine) {
	admin := router.Group("/admin")
	{
		admin.POST("/reset", authorization.Authorize("admin", "delete"), ResetPortal)
		admin.POST("/repair", authorization.Authorize("admin", "update"), RepairAppointments)
	}
}

// ResetPortal wipes every collection and reseeds the baseline data.
func ResetPortal(c *gin.Context) {
	if err := seedService.Reset(c); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse("portal reset to seed data"))
}

// RepairAppointments reassigns slots and appointments whose doctor no
// longer exists to a doctor chosen by the caller.
func RepairAppointments(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var data struct {
		TargetDoctorID string `json:"targetDoctorId" binding:"required"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	report, err := repairService.ReassignOrphans(c, data.TargetDoctorID, caller)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(report))
}
