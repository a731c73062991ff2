package routers

import (
	"time"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, mw *middlewares.Middlewares, internalConfig *config.InternalConfig, doctorController *doctors.DoctorController) {
	loginLimiter := middlewares.NewRateLimiter(internalConfig.App.LoginMaxAttemptsPerSecond, time.Second, 5*time.Minute)

	router.Post("/register", doctorController.Register)
	router.With(loginLimiter.Limit).Post("/login", doctorController.Login)

	router.Get("/", doctorController.GetAll)
	router.Get("/{doctorId}", doctorController.GetProfile)
	router.With(mw.Authenticate, mw.RequireDoctor).Put("/{doctorId}", doctorController.UpdateProfile)
	router.With(mw.Authenticate, mw.RequireDoctor).Delete("/{doctorId}", doctorController.DeleteProfile)

	router.With(mw.Authenticate, mw.RequireDoctor).Post("/{doctorId}/blogs", doctorController.CreateBlog)
	router.Get("/{doctorId}/blogs", doctorController.GetBlogs)
	router.With(mw.Authenticate, mw.RequireDoctor).Delete("/{doctorId}/blogs/{blogId}", doctorController.DeleteBlog)
}
