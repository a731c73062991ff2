package constvars

// Mongo collections
const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionSlots        = "slots"
	MongoCollectionAppointments = "appointments"
)

// Roles
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// Appointment statuses
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCanceled  = "canceled"
)

// Slot generation defaults. Times are wall-clock "HH:MM", dates "YYYY-MM-DD".
const (
	SlotDefaultDayStart = "09:00"
	SlotDefaultDayEnd   = "17:00"
	SlotWidthInMinutes  = 30
	ClockFormat         = "%02d:%02d"
)

// Redis key formats
const (
	RedisSessionKeyFormat       = "session:%s"
	RedisPasswordResetKeyFormat = "password-reset-otp:%s"
)

// OTP
const (
	OTPLength              = 6
	OTPExpiryTimeInMinutes = 10
)

// Context keys set by the auth middleware
type ContextKey string

const (
	ContextKeyUserID ContextKey = "userID"
	ContextKeyRole   ContextKey = "role"
)

const (
	RegexContainAtLeastOneSpecialChar = `[!@#~$%^&*()+|_.,<>?/\\-]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexClock                        = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexDateOnly                     = `^\d{4}-\d{2}-\d{2}$`
)

// Profile picture upload
var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png"}

// Default profile images assigned at registration, mirroring the static pool
// the frontend expects.
var (
	DoctorDefaultProfileImages = []string{
		"https://images.pexels.com/photos/4021801/pexels-photo-4021801.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	}
	PatientDefaultProfileImages = []string{
		"https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	}
)
