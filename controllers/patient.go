package controllers

import (
	"log"

	"MedNetwork/models"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

const patientCacheKey = "patient:"

func Patient(router *gin.Engine) {
	patient := router.Group("/patient")
	{
		patient.PUT("/update", authorization.Authorize("patient", "update"), UpdatePatient)
		patient.GET("/fetch/:id", authorization.Authorize("patient", "view"), FetchPatientByID)
		patient.GET("/fetchAll", authorization.Authorize("patient", "view"), FetchAllPatients)
		patient.GET("/me", FetchOwnPatient)
	}
}

// Patients edit their own profile; the id always comes from the session.
func UpdatePatient(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	patient.ID = caller
	if err := patientService.Update(c, patient); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	key := patientCacheKey + patient.ID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting patient from cache:", err)
	}
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Failed caching updated patient:", err)
	}
	c.JSON(200, util.SuccessResponse("updated successfully"))
}

func FetchPatientByID(c *gin.Context) {
	id := c.Param("id")
	key := patientCacheKey + id
	var cached map[string]interface{}
	exists, err := redis.GetCache(c, key, &cached)
	if err == nil && exists {
		c.JSON(200, util.SuccessResponse(cached))
		return
	}
	patient, err := patientService.FindByID(c, id)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := redis.SetCache(c, key, patient); err != nil {
		log.Println("Error from setCache: ", err)
	}
	c.JSON(200, util.SuccessResponse(patient))
}

func FetchAllPatients(c *gin.Context) {
	patients, err := patientService.List(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(patients))
}

func FetchOwnPatient(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	patient, err := patientService.FindByID(c, caller)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(patient))
}
