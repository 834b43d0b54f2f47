package controllers

import (
	"log"

	"MedNetwork/models"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

const hospitalCacheKey = "hospital:"

func Hospital(router *gin.Engine) {
	hospital := router.Group("/hospital")
	{
		hospital.POST("/create", authorization.Authorize("hospital", "create"), HospitalCreate)
		hospital.PUT("/update/:id", authorization.Authorize("hospital", "update"), UpdateHospital)
		hospital.GET("/fetch/:id", authorization.Authorize("hospital", "view"), FetchHospitalByID)
		hospital.GET("/fetchAll", authorization.Authorize("hospital", "view"), FetchAllHospitals)
	}
}

func HospitalCreate(c *gin.Context) {
	var hospital models.Hospital
	if err := c.BindJSON(&hospital); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	created, err := hospitalService.Create(c, hospital)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := redis.SetCache(c, hospitalCacheKey+created.ID, created); err != nil {
		log.Println("Error from setCache: ", err)
	}
	c.JSON(200, util.SuccessResponse(created))
}

func UpdateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.BindJSON(&hospital); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	hospital.ID = c.Param("id")
	if err := hospitalService.Update(c, hospital); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	key := hospitalCacheKey + hospital.ID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting hospital from cache:", err)
	}
	if err := redis.SetCache(c, key, hospital); err != nil {
		log.Println("Failed caching updated hospital:", err)
	}
	c.JSON(200, util.SuccessResponse("updated successfully"))
}

/*
* Check cache first, fall back to the store on a miss
 */
func FetchHospitalByID(c *gin.Context) {
	id := c.Param("id")
	key := hospitalCacheKey + id
	var cached map[string]interface{}
	exists, err := redis.GetCache(c, key, &cached)
	if err == nil && exists {
		c.JSON(200, util.SuccessResponse(cached))
		return
	}
	hospital, err := hospitalService.FindByID(c, id)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := redis.SetCache(c, key, hospital); err != nil {
		log.Println("Error from setCache: ", err)
	}
	c.JSON(200, util.SuccessResponse(hospital))
}

func FetchAllHospitals(c *gin.Context) {
	hospitals, err := hospitalService.List(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(hospitals))
}
