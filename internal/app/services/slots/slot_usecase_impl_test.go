package slots

import (
	"context"
	"sync"
	"testing"

	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeSlotRepository is a mutex-guarded in-memory stand-in for the mongo
// repository, with the same conditional-update semantics.
type fakeSlotRepository struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: make(map[string]*models.Slot)}
}

func (f *fakeSlotRepository) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, nil
	}
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string, onlyAvailable bool) ([]models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Slot, 0)
	for _, slot := range f.slots {
		if slot.Doctor.Hex() != doctorID || slot.Date != date {
			continue
		}
		if onlyAvailable && !slot.IsAvailable {
			continue
		}
		result = append(result, *slot)
	}
	return result, nil
}

func (f *fakeSlotRepository) ClaimSlot(ctx context.Context, slotID string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok || !slot.IsAvailable {
		return nil, nil
	}
	slot.IsAvailable = false
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) ReleaseSlot(ctx context.Context, slotID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slot, ok := f.slots[slotID]; ok {
		slot.IsAvailable = true
	}
	return nil
}

func (f *fakeSlotRepository) SetAvailability(ctx context.Context, slotID string, available bool) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok {
		return nil, nil
	}
	slot.IsAvailable = available
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) UpdateTimingsIfAvailable(ctx context.Context, slotID, startTime, endTime string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok || !slot.IsAvailable {
		return nil, nil
	}
	slot.StartTime = startTime
	slot.EndTime = endTime
	copied := *slot
	return &copied, nil
}

func (f *fakeSlotRepository) DeleteByDoctorAndDate(ctx context.Context, doctorID, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, slot := range f.slots {
		if slot.Doctor.Hex() == doctorID && slot.Date == date {
			delete(f.slots, id)
		}
	}
	return nil
}

func (f *fakeSlotRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		slot.ID = primitive.NewObjectID()
		copied := slot
		f.slots[slot.ID.Hex()] = &copied
		saved = append(saved, slot)
	}
	return saved, nil
}

func TestGenerateDaySlots(t *testing.T) {
	doctorID := primitive.NewObjectID()
	logger := zap.NewNop()

	t.Run("Default Working Day", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		slots, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)

		// 09:00-17:00 with 30 minute width yields 16 contiguous slots.
		require.Len(t, slots, 16)
		assert.Equal(t, "09:00", slots[0].StartTime)
		assert.Equal(t, "09:30", slots[0].EndTime)
		assert.Equal(t, "16:30", slots[15].StartTime)
		assert.Equal(t, "17:00", slots[15].EndTime)

		for i, slot := range slots {
			assert.True(t, slot.IsAvailable, "slot %d should start available", i)
			assert.Equal(t, "2026-09-01", slot.Date)
			assert.Equal(t, doctorID, slot.Doctor)
			if i > 0 {
				assert.Equal(t, slots[i-1].EndTime, slot.StartTime, "slots must be contiguous")
			}
		}
	})

	t.Run("Custom Range Discards Trailing Partial Slot", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		slots, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{
			Date: "2026-09-01",
			From: "10:00",
			To:   "11:45",
		})
		require.NoError(t, err)

		// 10:00-11:45 fits three whole slots; the 11:30-12:00 slot would
		// overrun the range and is dropped.
		require.Len(t, slots, 3)
		assert.Equal(t, "11:30", slots[2].EndTime)
	})

	t.Run("Regeneration Replaces Existing Slots", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		first, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)

		// Booking a slot does not survive regeneration.
		claimed, err := repo.ClaimSlot(context.Background(), first[0].ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, claimed)

		second, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)
		require.Len(t, second, 16)

		stored, err := repo.FindByDoctorAndDate(context.Background(), doctorID.Hex(), "2026-09-01", false)
		require.NoError(t, err)
		assert.Len(t, stored, 16, "old slots must be gone after regeneration")
		for _, slot := range stored {
			assert.True(t, slot.IsAvailable)
		}
	})

	t.Run("Regeneration Scoped To Doctor And Date", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)
		otherDoctorID := primitive.NewObjectID()

		_, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)
		_, err = usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-02"})
		require.NoError(t, err)
		_, err = usecase.GenerateDaySlots(context.Background(), otherDoctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)

		_, err = usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)

		otherDay, err := repo.FindByDoctorAndDate(context.Background(), doctorID.Hex(), "2026-09-02", false)
		require.NoError(t, err)
		assert.Len(t, otherDay, 16, "other dates of the same doctor are untouched")

		otherDoctor, err := repo.FindByDoctorAndDate(context.Background(), otherDoctorID.Hex(), "2026-09-01", false)
		require.NoError(t, err)
		assert.Len(t, otherDoctor, 16, "other doctors on the same date are untouched")
	})

	t.Run("Inverted Range Clears Day And Returns Empty", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		_, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{Date: "2026-09-01"})
		require.NoError(t, err)

		slots, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{
			Date: "2026-09-01",
			From: "15:00",
			To:   "10:00",
		})
		require.NoError(t, err)
		assert.Empty(t, slots)

		stored, err := repo.FindByDoctorAndDate(context.Background(), doctorID.Hex(), "2026-09-01", false)
		require.NoError(t, err)
		assert.Empty(t, stored, "inverted range still clears the day")
	})

	t.Run("Malformed Clock Value", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		_, err := usecase.GenerateDaySlots(context.Background(), doctorID.Hex(), &requests.GenerateSlots{
			Date: "2026-09-01",
			From: "9am",
			To:   "17:00",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})
}

func TestSetSlotAvailability(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Overrides Booked Slot", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		inserted, err := repo.InsertMany(context.Background(), []models.Slot{{
			Doctor:      primitive.NewObjectID(),
			Date:        "2026-09-01",
			StartTime:   "09:00",
			EndTime:     "09:30",
			IsAvailable: true,
		}})
		require.NoError(t, err)
		slotID := inserted[0].ID.Hex()

		claimed, err := repo.ClaimSlot(context.Background(), slotID)
		require.NoError(t, err)
		require.NotNil(t, claimed)

		// The manual override works even on a booked slot.
		slot, err := usecase.SetSlotAvailability(context.Background(), slotID, true)
		require.NoError(t, err)
		assert.True(t, slot.IsAvailable)
	})

	t.Run("Unknown Slot", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		_, err := usecase.SetSlotAvailability(context.Background(), primitive.NewObjectID().Hex(), false)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})
}

func TestEditSlotTimings(t *testing.T) {
	logger := zap.NewNop()

	seedSlot := func(t *testing.T, repo *fakeSlotRepository) string {
		inserted, err := repo.InsertMany(context.Background(), []models.Slot{{
			Doctor:      primitive.NewObjectID(),
			Date:        "2026-09-01",
			StartTime:   "09:00",
			EndTime:     "09:30",
			IsAvailable: true,
		}})
		require.NoError(t, err)
		return inserted[0].ID.Hex()
	}

	t.Run("Available Slot", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)
		slotID := seedSlot(t, repo)

		slot, err := usecase.EditSlotTimings(context.Background(), slotID, &requests.EditSlotTimings{
			StartTime: "10:00",
			EndTime:   "10:45",
		})
		require.NoError(t, err)
		assert.Equal(t, "10:00", slot.StartTime)
		assert.Equal(t, "10:45", slot.EndTime)
	})

	t.Run("Booked Slot Is Locked", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)
		slotID := seedSlot(t, repo)

		claimed, err := repo.ClaimSlot(context.Background(), slotID)
		require.NoError(t, err)
		require.NotNil(t, claimed)

		_, err = usecase.EditSlotTimings(context.Background(), slotID, &requests.EditSlotTimings{
			StartTime: "10:00",
			EndTime:   "10:45",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
	})

	t.Run("Unknown Slot", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)

		_, err := usecase.EditSlotTimings(context.Background(), primitive.NewObjectID().Hex(), &requests.EditSlotTimings{
			StartTime: "10:00",
			EndTime:   "10:45",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})

	t.Run("Inverted Range", func(t *testing.T) {
		repo := newFakeSlotRepository()
		usecase := NewSlotUsecase(repo, logger)
		slotID := seedSlot(t, repo)

		_, err := usecase.EditSlotTimings(context.Background(), slotID, &requests.EditSlotTimings{
			StartTime: "11:00",
			EndTime:   "10:00",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
	})
}
