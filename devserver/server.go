// Package devserver runs an in-memory RoadWatch service for local development.
// It speaks the same wire protocol as production but keeps everything in RAM:
// accounts, reports, the fixed verification code.
package devserver

import (
	"flag"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"roadwatch/api"
)

var (
	serverPort = flag.Int("port", 8080, "The port used by the service.")
)

// Router wires every endpoint of the service onto a fresh gin engine.
func Router(s *Service) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/help", s.Help)
	router.POST(api.EndPointRegister, s.Register)
	router.POST(api.EndPointVerify, s.Verify)
	router.POST(api.EndPointLogin, s.Login)
	router.POST(api.EndPointForgot, s.Forgot)
	router.POST(api.EndPointForgotValidate, s.ForgotValidate)
	router.POST(api.EndPointChangePassword, s.ChangePassword)
	router.POST(api.EndPointProviderSignIn, s.ProviderSignIn)
	router.POST(api.EndPointUpdateUser, s.UpdateUser)
	router.POST(api.EndPointDeleteUser, s.DeleteUser)
	router.POST(api.EndPointReport, s.Report)
	router.POST(api.EndPointReports, s.Reports)
	router.POST(api.EndPointGetStats, s.GetStats)
	return router
}

func StartService() {
	log.Info("Starting the service...")
	router := Router(NewService())

	router.Run(fmt.Sprintf(":%d", *serverPort))
	log.Info("Finished the service. Should not ever being seen.")
}
