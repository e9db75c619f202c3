package requests

// CreatePatient mirrors the registration form. First and last name may both
// be empty; the record is still creatable.
type CreatePatient struct {
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Dob       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"max=30"`
	Email     string `json:"email" validate:"omitempty,email"`
}
