package routers

import (
	"time"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, mw *middlewares.Middlewares, internalConfig *config.InternalConfig, patientController *patients.PatientController) {
	loginLimiter := middlewares.NewRateLimiter(internalConfig.App.LoginMaxAttemptsPerSecond, time.Second, 5*time.Minute)

	router.Post("/register", patientController.Register)
	router.With(loginLimiter.Limit).Post("/login", patientController.Login)

	router.With(loginLimiter.Limit).Post("/password-reset/request", patientController.RequestPasswordResetOTP)
	router.With(loginLimiter.Limit).Post("/password-reset/verify", patientController.VerifyOTPAndResetPassword)

	router.With(mw.Authenticate, mw.RequirePatient).Get("/{patientId}", patientController.GetProfile)
	router.With(mw.Authenticate, mw.RequirePatient).Put("/{patientId}", patientController.UpdateProfile)
	router.With(mw.Authenticate, mw.RequirePatient).Delete("/{patientId}", patientController.DeleteProfile)
}
