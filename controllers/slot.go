package controllers

import (
	"MedNetwork/models"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Slot(router *gin.Engine) {
	slot := router.Group("/slot")
	{
		slot.POST("/create", authorization.Authorize("slot", "create"), SlotCreate)
		slot.GET("/doctor/:doctorId", authorization.Authorize("slot", "view"), FetchSlotsForDoctor)
		slot.GET("/available/:doctorId", authorization.Authorize("slot", "view"), FetchAvailableSlots)
	}
}

// SlotCreate adds one ad-hoc slot for the calling doctor.
func SlotCreate(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var slot models.TimeSlot
	if err := c.BindJSON(&slot); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	slot.DoctorID = caller
	created, err := slotService.AddSlot(c, slot)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(created))
}

func FetchSlotsForDoctor(c *gin.Context) {
	slots, err := slotService.SlotsForDoctor(c, c.Param("doctorId"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(slots))
}

// FetchAvailableSlots serves the patient booking view; an optional date
// query narrows it to one day.
func FetchAvailableSlots(c *gin.Context) {
	slots, err := slotService.AvailableForDoctor(c, c.Param("doctorId"), c.Query("date"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(slots))
}
