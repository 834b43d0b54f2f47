package controllers

import (
	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine) {
	appointment := router.Group("/appointment")
	{
		appointment.POST("/book", authorization.Authorize("appointment", "create"), BookAppointment)
		appointment.PUT("/cancel/:id", authorization.Authorize("appointment", "update"), CancelAppointment)
		appointment.PUT("/status/:id", authorization.Authorize("appointment", "update"), SetAppointmentStatus)
		appointment.GET("/mine", authorization.Authorize("appointment", "view"), FetchOwnAppointments)
		appointment.GET("/doctor", authorization.Authorize("appointment", "view"), FetchDoctorAppointments)
		appointment.GET("/fetchAll", authorization.Authorize("appointment", "view"), FetchAllAppointments)
	}
}

// BookAppointment books the chosen slot for the calling patient.
func BookAppointment(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var data struct {
		DoctorID   string `json:"doctorId" binding:"required"`
		TimeSlotID string `json:"timeSlotId" binding:"required"`
		Notes      string `json:"notes"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	appointment, err := appointmentService.Book(c, caller, data.DoctorID, data.TimeSlotID, data.Notes)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointment))
}

func CancelAppointment(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := appointmentService.Cancel(c, c.Param("id"), caller); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse("cancelled successfully"))
}

// SetAppointmentStatus lets the owning doctor mark an appointment
// completed or cancelled.
func SetAppointmentStatus(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var data struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := appointmentService.SetStatus(c, c.Param("id"), caller, data.Status); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse("status updated successfully"))
}

func FetchOwnAppointments(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	appointments, err := appointmentService.ForPatient(c, caller)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointments))
}

func FetchDoctorAppointments(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	appointments, err := appointmentService.ForDoctor(c, caller)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointments))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := appointmentService.All(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointments))
}
