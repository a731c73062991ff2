package constvars

// Validation messages mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be exactly %s characters long",
	"oneof":    "must be one of %s",
	"clock":    "must be a valid time in HH:MM format",
	"dateonly": "must be a valid date in YYYY-MM-DD format",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientEmailNotFound                 = "email not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotNotFound                  = "slot not found"
	ErrClientSlotUnavailable               = "slot not available or already booked"
	ErrClientSlotLocked                    = "cannot edit a booked/unavailable slot"
	ErrClientBlogNotFound                  = "blog not found"
	ErrClientInvalidTimeRange              = "invalid time range"
	ErrClientOTPNotRequested               = "no OTP request found for this email"
	ErrClientOTPExpired                    = "OTP expired"
	ErrClientOTPInvalid                    = "invalid OTP"
	ErrClientInvalidImageFormat            = "invalid image format"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevValidationFailed     = "validation failed"
	ErrDevInvalidInput         = "invalid input"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevEmailAlreadyExists   = "email already exists"

	// URL params
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"

	// Authentication
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevRoleTypeDoesntMatch       = "role type doesn't match"

	// Scheduling domain
	ErrDevDoctorNotExists      = "doctor does not exist"
	ErrDevPatientNotExists     = "patient does not exist"
	ErrDevAppointmentNotExists = "appointment does not exist"
	ErrDevSlotNotExists        = "slot does not exist"
	ErrDevSlotAlreadyBooked    = "slot is unavailable or already booked"
	ErrDevSlotLockedForEditing = "slot is booked and locked for timing edits"
	ErrDevBlogNotExists        = "blog does not exist"
	ErrDevInvalidClockRange    = "range start must be before range end"
	ErrDevOTPNotRequested      = "no OTP stored for the given email"
	ErrDevOTPExpired           = "stored OTP has expired"
	ErrDevOTPMismatch          = "provided OTP does not match stored OTP"
	ErrDevOTPGenerationFailed  = "failed to generate OTP"

	// Mongo DB
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis
	ErrDevRedisGetNoData  = "failed to get data from redis with key: %s"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ
	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"

	// Minio
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket: %s"

	// Image validation
	ErrDevImageValidationFailed = "image validation failed"

	// Server
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
)
