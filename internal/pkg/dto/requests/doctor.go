package requests

type RegisterDoctor struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	Specialty      string `json:"specialty" validate:"required"`
	ClinicLocation string `json:"clinicLocation" validate:"required"`
	ContactNumber  string `json:"contactNumber" validate:"required"`
	WorkingHours   string `json:"workingHours,omitempty"`
	About          string `json:"about,omitempty"`
}

type UpdateDoctor struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Specialty      string `json:"specialty,omitempty"`
	ClinicLocation string `json:"clinicLocation,omitempty"`
	ContactNumber  string `json:"contactNumber,omitempty"`
	WorkingHours   string `json:"workingHours,omitempty"`
	About          string `json:"about,omitempty"`

	// Optional base64 data-URI image; decoded bytes and extension are filled
	// in by the controller before the usecase runs.
	ProfilePicture          string `json:"profilePicture,omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}

type CreateBlog struct {
	HeadTitle string `json:"headTitle" validate:"required"`
	Body      string `json:"body" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Image     string `json:"image,omitempty"`
}
