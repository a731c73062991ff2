package slots

import (
	"context"

	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository contracts.SlotRepository
	Log            *zap.Logger
}

func NewSlotUsecase(slotRepository contracts.SlotRepository, logger *zap.Logger) contracts.SlotUsecase {
	return &slotUsecase{
		SlotRepository: slotRepository,
		Log:            logger,
	}
}

func (uc *slotUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	return uc.SlotRepository.FindByDoctorAndDate(ctx, doctorID, date, true)
}

func (uc *slotUsecase) GetDoctorSlots(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	return uc.SlotRepository.FindByDoctorAndDate(ctx, doctorID, date, false)
}

// GenerateDaySlots replaces all of the doctor's slots for the given date with
// contiguous fixed-width slots covering [from, to). Generation is a
// destructive replace, so re-running it with the same arguments is idempotent.
func (uc *slotUsecase) GenerateDaySlots(ctx context.Context, doctorID string, request *requests.GenerateSlots) ([]models.Slot, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	from := request.From
	if from == "" {
		from = constvars.SlotDefaultDayStart
	}
	to := request.To
	if to == "" {
		to = constvars.SlotDefaultDayEnd
	}

	fromHour, fromMinute, err := utils.ParseClock(from)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeRange(err)
	}
	toHour, toMinute, err := utils.ParseClock(to)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeRange(err)
	}

	newSlots := make([]models.Slot, 0)
	curHour, curMinute := fromHour, fromMinute
	for utils.ClockBefore(curHour, curMinute, toHour, toMinute) {
		endHour, endMinute := utils.AddMinutes(curHour, curMinute, constvars.SlotWidthInMinutes)
		if utils.ClockBefore(toHour, toMinute, endHour, endMinute) {
			// A trailing partial slot would exceed the range; discard it.
			break
		}
		newSlots = append(newSlots, models.Slot{
			Doctor:      doctorObjectID,
			Date:        request.Date,
			StartTime:   utils.FormatClock(curHour, curMinute),
			EndTime:     utils.FormatClock(endHour, endMinute),
			IsAvailable: true,
		})
		curHour, curMinute = endHour, endMinute
	}

	err = uc.SlotRepository.DeleteByDoctorAndDate(ctx, doctorID, request.Date)
	if err != nil {
		return nil, err
	}

	if len(newSlots) == 0 {
		// An inverted or empty range produces zero slots rather than an error.
		return newSlots, nil
	}

	savedSlots, err := uc.SlotRepository.InsertMany(ctx, newSlots)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("generated day slots",
		zap.String("doctor_id", doctorID),
		zap.String("date", request.Date),
		zap.Int("slot_count", len(savedSlots)),
	)
	return savedSlots, nil
}

// SetSlotAvailability overwrites the availability flag directly. The doctor
// can free or block a slot manually, even one still referenced by a scheduled
// appointment; the appointment record is left untouched.
func (uc *slotUsecase) SetSlotAvailability(ctx context.Context, slotID string, available bool) (*models.Slot, error) {
	slot, err := uc.SlotRepository.SetAvailability(ctx, slotID, available)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotExist(nil)
	}
	return slot, nil
}

func (uc *slotUsecase) EditSlotTimings(ctx context.Context, slotID string, request *requests.EditSlotTimings) (*models.Slot, error) {
	startHour, startMinute, err := utils.ParseClock(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeRange(err)
	}
	endHour, endMinute, err := utils.ParseClock(request.EndTime)
	if err != nil {
		return nil, exceptions.ErrInvalidTimeRange(err)
	}
	if !utils.ClockBefore(startHour, startMinute, endHour, endMinute) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	slot, err := uc.SlotRepository.UpdateTimingsIfAvailable(ctx, slotID, request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		existing, err := uc.SlotRepository.FindByID(ctx, slotID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, exceptions.ErrSlotNotExist(nil)
		}
		return nil, exceptions.ErrSlotLocked(nil)
	}
	return slot, nil
}
