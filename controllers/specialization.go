package controllers

import (
	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Specialization(router *gin.Engine) {
	router.GET("/specialization/fetchAll", FetchAllSpecializations)
}

func FetchAllSpecializations(c *gin.Context) {
	specializations, err := specializationService.List(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(specializations))
}
