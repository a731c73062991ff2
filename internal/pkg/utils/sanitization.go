package utils

import (
	"strings"

	"clinic-service/internal/pkg/dto/requests"
)

func SanitizeRegisterDoctorRequest(request *requests.RegisterDoctor) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Specialty = strings.TrimSpace(request.Specialty)
	request.ClinicLocation = strings.TrimSpace(request.ClinicLocation)
	request.ContactNumber = strings.TrimSpace(request.ContactNumber)
}

func SanitizeRegisterPatientRequest(request *requests.RegisterPatient) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.ContactNumber = strings.TrimSpace(request.ContactNumber)
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeBookAppointmentRequest(request *requests.BookAppointment) {
	request.Disease = strings.TrimSpace(request.Disease)
}

func SanitizeGenerateSlotsRequest(request *requests.GenerateSlots) {
	request.Date = strings.TrimSpace(request.Date)
	request.From = strings.TrimSpace(request.From)
	request.To = strings.TrimSpace(request.To)
}

func SanitizeRequestPasswordResetOTP(request *requests.RequestPasswordResetOTP) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeVerifyOTPAndResetPassword(request *requests.VerifyOTPAndResetPassword) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.OTP = strings.TrimSpace(request.OTP)
}
