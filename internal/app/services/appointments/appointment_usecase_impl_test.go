package appointments

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

// In-memory fakes with the same conditional-update semantics as the mongo
// repositories. The slot fake is mutex-guarded so the concurrent booking test
// exercises a real race on the claim.

type fakeSlotRepository struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: make(map[string]*models.Slot)}
}

func (f *fakeSlotRepository) seed(slot models.Slot) models.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slot.ID.IsZero() {
		slot.ID = primitive.NewObjectID()
	}
	copied := slot
	f.slots[slot.ID.Hex()] = &copied
	return slot
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
	return nil, nil
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
	return nil
}

func (f *fakeSlotRepository) InsertMany(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	saved := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		saved = append(saved, f.seed(slot))
	}
	return saved, nil
}

type fakeAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appointment.ID = primitive.NewObjectID()
	copied := *appointment
	f.appointments[appointment.ID.Hex()] = &copied
	return appointment, nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.Doctor.Hex() == doctorID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]models.Appointment, 0)
	for _, appointment := range f.appointments {
		if appointment.Patient.Hex() == patientID {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepository) UpdateFields(ctx context.Context, appointmentID, status, disease string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appointment, ok := f.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	if status != "" {
		appointment.Status = status
	}
	if disease != "" {
		appointment.Disease = disease
	}
	copied := *appointment
	return &copied, nil
}

func (f *fakeAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.appointments, appointmentID)
	return nil
}

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	return doctor, nil
}

func (f *fakeDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return doctor, nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) { return nil, nil }

func (f *fakeDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error { return nil }

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error { return nil }

func (f *fakeDoctorRepository) AddBlog(ctx context.Context, doctorID string, blog *models.Blog) error {
	return nil
}

func (f *fakeDoctorRepository) RemoveBlog(ctx context.Context, doctorID, blogID string) error {
	return nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	return patient, nil
}

func (f *fakePatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

func (f *fakePatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return nil
}

func (f *fakePatientRepository) UpdatePasswordByEmail(ctx context.Context, email, hashedPassword string) error {
	return nil
}

func (f *fakePatientRepository) DeleteByID(ctx context.Context, patientID string) error { return nil }

type bookingFixture struct {
	usecase         *appointmentUsecase
	slotRepository  *fakeSlotRepository
	appointmentRepo *fakeAppointmentRepository
	doctorID        primitive.ObjectID
	patientID       primitive.ObjectID
	slot            models.Slot
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()

	slotRepository := newFakeSlotRepository()
	slot := slotRepository.seed(models.Slot{
		Doctor:      doctorID,
		Date:        "2026-09-01",
		StartTime:   "09:00",
		EndTime:     "09:30",
		IsAvailable: true,
	})

	appointmentRepo := newFakeAppointmentRepository()
	doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		doctorID.Hex(): {ID: doctorID, FirstName: "Grace", LastName: "Osei", Specialty: "Cardiology", ClinicLocation: "Accra"},
	}}
	patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
		patientID.Hex(): {ID: patientID, FirstName: "Kofi", LastName: "Mensah", ContactNumber: "+233200000000"},
	}}

	usecase := NewAppointmentUsecase(appointmentRepo, slotRepository, doctorRepo, patientRepo, zap.NewNop()).(*appointmentUsecase)

	return &bookingFixture{
		usecase:         usecase,
		slotRepository:  slotRepository,
		appointmentRepo: appointmentRepo,
		doctorID:        doctorID,
		patientID:       patientID,
		slot:            slot,
	}
}

func (fx *bookingFixture) bookRequest() *requests.BookAppointment {
	return &requests.BookAppointment{
		Patient: fx.patientID.Hex(),
		Doctor:  fx.doctorID.Hex(),
		SlotID:  fx.slot.ID.Hex(),
		Disease: "hypertension",
	}
}

func TestBookAppointment(t *testing.T) {
	t.Run("Successful Booking Consumes Slot", func(t *testing.T) {
		fx := newBookingFixture(t)

		appointment, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusScheduled, appointment.Status)
		assert.Equal(t, fx.slot.Date, appointment.AppointmentDate)
		assert.Equal(t, fx.slot.ID, appointment.Slot)

		stored, err := fx.slotRepository.FindByID(context.Background(), fx.slot.ID.Hex())
		require.NoError(t, err)
		assert.False(t, stored.IsAvailable, "booked slot must no longer be available")
	})

	t.Run("Double Booking Conflicts", func(t *testing.T) {
		fx := newBookingFixture(t)

		_, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)

		_, err = fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
	})

	t.Run("Unknown Slot Conflicts", func(t *testing.T) {
		fx := newBookingFixture(t)

		request := fx.bookRequest()
		request.SlotID = primitive.NewObjectID().Hex()
		_, err := fx.usecase.BookAppointment(context.Background(), request)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
	})

	t.Run("Concurrent Bookings Yield Exactly One Success", func(t *testing.T) {
		fx := newBookingFixture(t)

		const attempts = 50
		var wg sync.WaitGroup
		errs := make([]error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
			}(i)
		}
		wg.Wait()

		successes := 0
		for _, err := range errs {
			if err == nil {
				successes++
				continue
			}
			assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict), "losers must fail with a conflict, got: %v", err)
		}
		assert.Equal(t, 1, successes, "exactly one booking may win the slot")

		appointments, err := fx.appointmentRepo.FindByPatient(context.Background(), fx.patientID.Hex())
		require.NoError(t, err)
		assert.Len(t, appointments, 1)
	})
}

func TestUpdateAppointment(t *testing.T) {
	t.Run("Cancel Releases Slot For Rebooking", func(t *testing.T) {
		fx := newBookingFixture(t)

		appointment, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)

		canceled, err := fx.usecase.UpdateAppointment(context.Background(), appointment.ID.Hex(), &requests.UpdateAppointment{
			Status: constvars.AppointmentStatusCanceled,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCanceled, canceled.Status)

		stored, err := fx.slotRepository.FindByID(context.Background(), fx.slot.ID.Hex())
		require.NoError(t, err)
		assert.True(t, stored.IsAvailable, "canceling must free the slot")

		// The freed slot can be booked again while the canceled record remains.
		rebooked, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)
		assert.NotEqual(t, appointment.ID, rebooked.ID)

		appointments, err := fx.appointmentRepo.FindByPatient(context.Background(), fx.patientID.Hex())
		require.NoError(t, err)
		assert.Len(t, appointments, 2, "canceled history is retained")
	})

	t.Run("Complete Leaves Slot Consumed", func(t *testing.T) {
		fx := newBookingFixture(t)

		appointment, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)

		completed, err := fx.usecase.UpdateAppointment(context.Background(), appointment.ID.Hex(), &requests.UpdateAppointment{
			Status: constvars.AppointmentStatusCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, completed.Status)

		stored, err := fx.slotRepository.FindByID(context.Background(), fx.slot.ID.Hex())
		require.NoError(t, err)
		assert.False(t, stored.IsAvailable)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		fx := newBookingFixture(t)

		_, err := fx.usecase.UpdateAppointment(context.Background(), primitive.NewObjectID().Hex(), &requests.UpdateAppointment{
			Disease: "migraine",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("Delete Releases Slot", func(t *testing.T) {
		fx := newBookingFixture(t)

		appointment, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)

		err = fx.usecase.DeleteAppointment(context.Background(), appointment.ID.Hex())
		require.NoError(t, err)

		stored, err := fx.slotRepository.FindByID(context.Background(), fx.slot.ID.Hex())
		require.NoError(t, err)
		assert.True(t, stored.IsAvailable)

		remaining, err := fx.appointmentRepo.FindByPatient(context.Background(), fx.patientID.Hex())
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("Unknown Appointment", func(t *testing.T) {
		fx := newBookingFixture(t)

		err := fx.usecase.DeleteAppointment(context.Background(), primitive.NewObjectID().Hex())
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
	})
}

func TestGetAppointments(t *testing.T) {
	t.Run("Doctor View Joins Patient And Slot", func(t *testing.T) {
		fx := newBookingFixture(t)

		_, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)

		appointments, err := fx.usecase.GetDoctorAppointments(context.Background(), fx.doctorID.Hex())
		require.NoError(t, err)
		require.Len(t, appointments, 1)

		require.NotNil(t, appointments[0].Patient)
		assert.Equal(t, "Kofi", appointments[0].Patient.FirstName)
		require.NotNil(t, appointments[0].Slot)
		assert.Equal(t, "09:00", appointments[0].Slot.StartTime)
	})

	t.Run("Patient View Joins Doctor And Slot", func(t *testing.T) {
		fx := newBookingFixture(t)

		_, err := fx.usecase.BookAppointment(context.Background(), fx.bookRequest())
		require.NoError(t, err)

		appointments, err := fx.usecase.GetPatientAppointments(context.Background(), fx.patientID.Hex())
		require.NoError(t, err)
		require.Len(t, appointments, 1)

		require.NotNil(t, appointments[0].Doctor)
		assert.Equal(t, "Cardiology", appointments[0].Doctor.Specialty)
		require.NotNil(t, appointments[0].Slot)
		assert.Equal(t, "09:30", appointments[0].Slot.EndTime)
	})
}
