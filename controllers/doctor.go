package controllers

import (
	"log"

	"MedNetwork/models"
	"MedNetwork/store"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

const doctorCacheKey = "doctor:"

func Doctor(router *gin.Engine) {
	doctor := router.Group("/doctor")
	{
		doctor.POST("/create", authorization.Authorize("doctor", "create"), DoctorCreate)
		doctor.PUT("/update/:id", authorization.Authorize("doctor", "update"), UpdateDoctor)
		doctor.GET("/fetch/:id", authorization.Authorize("doctor", "view"), FetchDoctorByID)
		doctor.GET("/fetchAll", authorization.Authorize("doctor", "view"), FetchAllDoctors)
		doctor.GET("/hospital/:hospitalId", authorization.Authorize("doctor", "view"), FetchDoctorsByHospital)
		doctor.GET("/search", authorization.Authorize("doctor", "view"), SearchDoctors)
	}
}

func DoctorCreate(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	// hospital admins only create doctors for their own hospital
	if caller, err := callerID(c); err == nil {
		if user, err := authService.UserByID(c, caller); err == nil && user.Role == models.RoleHospitalAdmin {
			doctor.HospitalID = user.HospitalID
		}
	}
	created, err := doctorService.Create(c, doctor)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := redis.SetCache(c, doctorCacheKey+created.ID, created); err != nil {
		log.Println("Error from setCache: ", err)
	}
	c.JSON(200, util.SuccessResponse(created))
}

func UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	doctor.ID = c.Param("id")
	if err := doctorService.Update(c, doctor); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	key := doctorCacheKey + doctor.ID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting doctor from cache:", err)
	}
	if err := redis.SetCache(c, key, doctor); err != nil {
		log.Println("Failed caching updated doctor:", err)
	}
	c.JSON(200, util.SuccessResponse("updated successfully"))
}

func FetchDoctorByID(c *gin.Context) {
	id := c.Param("id")
	key := doctorCacheKey + id
	var cached map[string]interface{}
	exists, err := redis.GetCache(c, key, &cached)
	if err == nil && exists {
		c.JSON(200, util.SuccessResponse(cached))
		return
	}
	doctors, err := doctorService.List(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	for _, doctor := range doctors {
		if doctor.ID == id {
			if err := redis.SetCache(c, key, doctor); err != nil {
				log.Println("Error from setCache: ", err)
			}
			c.JSON(200, util.SuccessResponse(doctor))
			return
		}
	}
	c.JSON(400, util.FailedResponse(store.ErrNotFound))
}

func FetchAllDoctors(c *gin.Context) {
	doctors, err := doctorService.List(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctors))
}

func FetchDoctorsByHospital(c *gin.Context) {
	doctors, err := doctorService.ForHospital(c, c.Param("hospitalId"))
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctors))
}

func SearchDoctors(c *gin.Context) {
	var filters models.SearchFilters
	if err := c.BindQuery(&filters); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	doctors, err := doctorService.Search(c, filters)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctors))
}
