package requests

type RegisterPatient struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,password"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Age           int    `json:"age,omitempty"`
	Gender        string `json:"gender,omitempty"`
}

type UpdatePatient struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Age           int    `json:"age,omitempty"`
	Gender        string `json:"gender,omitempty"`

	ProfilePicture          string `json:"profilePicture,omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}
