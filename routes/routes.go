package routes

import (
	"MedNetwork/controllers"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	controllers.Specialization(r)
	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.AuthPrivate(r)
	controllers.Hospital(r)
	controllers.Doctor(r)
	controllers.Patient(r)
	controllers.Schedule(r)
	controllers.Slot(r)
	controllers.Appointment(r)
	controllers.Admin(r)
}
