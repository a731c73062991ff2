package appointments

import (
	"context"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SlotRepository        contracts.SlotRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.SlotRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		SlotRepository:        slotRepository,
		DoctorRepository:      doctorRepository,
		PatientRepository:     patientRepository,
		Log:                   logger,
	}
}

// BookAppointment claims the slot first with a conditional update and only
// then creates the appointment, so concurrent bookings of the same slot end
// with exactly one scheduled appointment. If the insert fails after the claim
// the slot is released again on a best-effort basis.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	patientObjectID, err := primitive.ObjectIDFromHex(request.Patient)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	doctorObjectID, err := primitive.ObjectIDFromHex(request.Doctor)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	slot, err := uc.SlotRepository.ClaimSlot(ctx, request.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotUnavailable(nil)
	}

	appointment := &models.Appointment{
		Patient:         patientObjectID,
		Doctor:          doctorObjectID,
		AppointmentDate: slot.Date,
		Slot:            slot.ID,
		Status:          constvars.AppointmentStatusScheduled,
		Disease:         request.Disease,
	}

	savedAppointment, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		releaseErr := uc.SlotRepository.ReleaseSlot(ctx, request.SlotID)
		if releaseErr != nil {
			uc.Log.Warn("failed to release slot after booking insert failed",
				zap.String("slot_id", request.SlotID),
				zap.Error(releaseErr),
			)
		}
		return nil, err
	}

	uc.Log.Info("appointment booked",
		zap.String("appointment_id", savedAppointment.ID.Hex()),
		zap.String("slot_id", slot.ID.Hex()),
		zap.String("patient_id", request.Patient),
		zap.String("doctor_id", request.Doctor),
	)
	return savedAppointment, nil
}

func (uc *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID string) ([]responses.DoctorAppointment, error) {
	appointments, err := uc.AppointmentRepository.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DoctorAppointment, 0, len(appointments))
	for _, appointment := range appointments {
		item := responses.DoctorAppointment{
			ID:              appointment.ID.Hex(),
			AppointmentDate: appointment.AppointmentDate,
			Status:          appointment.Status,
			Disease:         appointment.Disease,
		}

		patient, err := uc.PatientRepository.FindByID(ctx, appointment.Patient.Hex())
		if err != nil {
			return nil, err
		}
		if patient != nil {
			item.Patient = &responses.PatientSummary{
				ID:            patient.ID.Hex(),
				FirstName:     patient.FirstName,
				LastName:      patient.LastName,
				ContactNumber: patient.ContactNumber,
			}
		}

		slot, err := uc.SlotRepository.FindByID(ctx, appointment.Slot.Hex())
		if err != nil {
			return nil, err
		}
		item.Slot = slot

		result = append(result, item)
	}
	return result, nil
}

func (uc *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID string) ([]responses.PatientAppointment, error) {
	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.PatientAppointment, 0, len(appointments))
	for _, appointment := range appointments {
		item := responses.PatientAppointment{
			ID:              appointment.ID.Hex(),
			AppointmentDate: appointment.AppointmentDate,
			Status:          appointment.Status,
			Disease:         appointment.Disease,
		}

		doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.Doctor.Hex())
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			item.Doctor = &responses.DoctorSummary{
				ID:             doctor.ID.Hex(),
				FirstName:      doctor.FirstName,
				LastName:       doctor.LastName,
				ClinicLocation: doctor.ClinicLocation,
				Specialty:      doctor.Specialty,
			}
		}

		slot, err := uc.SlotRepository.FindByID(ctx, appointment.Slot.Hex())
		if err != nil {
			return nil, err
		}
		item.Slot = slot

		result = append(result, item)
	}
	return result, nil
}

// UpdateAppointment applies status/disease updates. A transition to canceled
// frees the bound slot first; completing an appointment leaves the slot
// consumed.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	existing, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	if request.Status == constvars.AppointmentStatusCanceled {
		uc.releaseBoundSlot(ctx, existing)
	}

	updated, err := uc.AppointmentRepository.UpdateFields(ctx, appointmentID, request.Status, request.Disease)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return updated, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	existing, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}

	uc.releaseBoundSlot(ctx, existing)

	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}

// releaseBoundSlot frees the appointment's slot. A missing or unreachable
// slot is tolerated; the appointment-side mutation still proceeds.
func (uc *appointmentUsecase) releaseBoundSlot(ctx context.Context, appointment *models.Appointment) {
	err := uc.SlotRepository.ReleaseSlot(ctx, appointment.Slot.Hex())
	if err != nil {
		uc.Log.Warn("failed to release slot bound to appointment",
			zap.String("appointment_id", appointment.ID.Hex()),
			zap.String("slot_id", appointment.Slot.Hex()),
			zap.Error(err),
		)
	}
}
