package routers

import (
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/services/slots"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, mw *middlewares.Middlewares, slotController *slots.SlotController) {
	router.Get("/available", slotController.GetAvailableSlots)
	router.With(mw.Authenticate, mw.RequireDoctor).Get("/", slotController.GetDoctorSlots)

	router.With(mw.Authenticate, mw.RequireDoctor).Post("/generate/{doctorId}", slotController.GenerateSlots)
	router.With(mw.Authenticate, mw.RequireDoctor).Patch("/{slotId}/availability", slotController.SetSlotAvailability)
	router.With(mw.Authenticate, mw.RequireDoctor).Put("/{slotId}/timings", slotController.EditSlotTimings)
}
