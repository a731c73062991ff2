package routers

import (
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(mw.Authenticate, mw.RequirePatient).Post("/", appointmentController.BookAppointment)
	router.With(mw.Authenticate, mw.RequireDoctor).Get("/doctor/{doctorId}", appointmentController.GetDoctorAppointments)
	router.With(mw.Authenticate, mw.RequirePatient).Get("/patient/{patientId}", appointmentController.GetPatientAppointments)
	router.With(mw.Authenticate, mw.RequirePatient).Patch("/{appointmentId}", appointmentController.UpdateAppointment)
	router.With(mw.Authenticate, mw.RequireDoctor).Delete("/{appointmentId}", appointmentController.DeleteAppointment)
}
