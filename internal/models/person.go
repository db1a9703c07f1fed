package models

// Person is an elected official as stored in the elus table.
// Mandates holds the JSON-encoded list of roles.
type Person struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Mandates string `json:"mandates" db:"mandates"`
}

// Elu is the external representation of a Person, with mandates as a list
type Elu struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Mandates []string `json:"mandates"`
}

// ToElu maps a stored person to its external representation
func (p *Person) ToElu() Elu {
	return Elu{
		Name:     p.Name,
		Email:    p.Email,
		Mandates: DecodeMandates(p.Mandates),
	}
}

// CreatePersonRequest represents the request payload for creating a person
type CreatePersonRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Mandates []string `json:"mandates"`
}

// Validate validates the create person request
func (r *CreatePersonRequest) Validate() error {
	if r.Name == "" {
		return ErrPersonNameRequired
	}
	if r.Email == "" {
		return ErrPersonEmailRequired
	}
	return nil
}

// Common errors
var (
	ErrPersonNameRequired  = &ValidationError{Field: "name", Message: "Name is required"}
	ErrPersonEmailRequired = &ValidationError{Field: "email", Message: "Email is required"}
)

// ValidationError describes a request field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the validation message
func (e *ValidationError) Error() string {
	return e.Message
}
