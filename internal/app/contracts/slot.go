package contracts

import (
	"context"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
)

type SlotUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error)
	GetDoctorSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error)
	GenerateDaySlots(ctx context.Context, doctorID string, request *requests.GenerateSlots) ([]models.Slot, error)
	SetSlotAvailability(ctx context.Context, slotID string, available bool) (*models.Slot, error)
	EditSlotTimings(ctx context.Context, slotID string, request *requests.EditSlotTimings) (*models.Slot, error)
}

type SlotRepository interface {
	FindByID(ctx context.Context, slotID string) (*models.Slot, error)
	FindByDoctorAndDate(ctx context.Context, doctorID, date string, onlyAvailable bool) ([]models.Slot, error)

	// ClaimSlot atomically flips the slot from available to booked and
	// returns the claimed slot. It returns (nil, nil) when the slot does not
	// exist or is already booked, so two concurrent claims can never both
	// succeed.
	ClaimSlot(ctx context.Context, slotID string) (*models.Slot, error)

	// ReleaseSlot marks the slot available again. A missing slot is a no-op.
	ReleaseSlot(ctx context.Context, slotID string) error

	SetAvailability(ctx context.Context, slotID string, available bool) (*models.Slot, error)

	// UpdateTimingsIfAvailable rewrites start/end only while the slot is
	// still available; returns (nil, nil) when the slot is booked or missing.
	UpdateTimingsIfAvailable(ctx context.Context, slotID, startTime, endTime string) (*models.Slot, error)

	DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error
	InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error)
}
