package constvars

const (
	RegisterSuccessMessage           = "registration successfully"
	LoginSuccessMessage              = "login successful"
	GetProfileSuccessMessage         = "profile fetched successfully"
	UpdateProfileSuccessMessage      = "profile updated successfully"
	DeleteProfileSuccessMessage      = "profile deleted successfully"
	GetDoctorsSuccessMessage         = "doctors fetched successfully"
	GetSlotsSuccessMessage           = "slots fetched successfully"
	GenerateSlotsSuccessMessage      = "slots generated successfully"
	UpdateSlotSuccessMessage         = "slot updated successfully"
	BookAppointmentSuccessMessage    = "appointment booked successfully"
	GetAppointmentsSuccessMessage    = "appointments fetched successfully"
	UpdateAppointmentSuccessMessage  = "appointment updated successfully"
	DeleteAppointmentSuccessMessage  = "appointment deleted successfully"
	CreateBlogSuccessMessage         = "blog created successfully"
	GetBlogsSuccessMessage           = "blogs fetched successfully"
	DeleteBlogSuccessMessage         = "blog deleted successfully"
	OTPSentSuccessMessage            = "OTP sent to your email"
	PasswordResetSuccessMessage      = "password reset successful"
)
