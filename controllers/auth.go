package controllers

import (
	"MedNetwork/services"

	util "github.com/KanapuramVaishnavi/Core/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	router.POST("/auth/login", Login)
	router.POST("/auth/signup", Signup)
	router.GET("/ws", services.ServeWs)
}

func AuthPrivate(router *gin.Engine) {
	router.POST("/auth/reset-password", ResetPassword)
}

func Login(c *gin.Context) {
	var data struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	result, err := authService.Login(c, data.Email, data.Password)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(result))
}

func Signup(c *gin.Context) {
	var input services.SignupInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	patient, err := patientService.Register(c, input)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(patient))
}

func ResetPassword(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	var data struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	if err := authService.ResetPassword(c, caller, data.CurrentPassword, data.NewPassword); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse("password updated successfully"))
}
