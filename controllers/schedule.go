package controllers

import (
	"MedNetwork/models"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Schedule(router *gin.Engine) {
	schedule := router.Group("/schedule")
	{
		schedule.POST("/save", authorization.Authorize("schedule", "create"), SaveSchedule)
		schedule.GET("/doctor/:doctorId", authorization.Authorize("schedule", "view"), FetchScheduleForDoctor)
	}
}

/*
* Doctors save their own weekly template, the doctor id comes from the
* session rather than the request body
* Saving regenerates the slot horizon and reports how many slots appeared
 */
func SaveSchedule(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var schedule models.WeeklySchedule
	if err := c.BindJSON(&schedule); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	schedule.DoctorID = caller
	saved, created, err := scheduleService.Upsert(c, schedule)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(gin.H{"schedule": saved, "slotsCreated": created}))
}

func FetchScheduleForDoctor(c *gin.Context) {
	schedule, err := scheduleService.ForDoctor(c, c.Param("doctorId"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(schedule))
}
