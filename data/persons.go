package data

import (
	"github.com/emzola/liber/internal/validator"
)

// Person defines a person record. Authors and borrowers are profiles layered
// on top of a person; a person holds at most one of each.
type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"-"`
	Version   int32  `json:"-"`
}

// Name returns the person's display name.
func (p *Person) Name() string {
	return p.FirstName + " " + p.LastName
}

func ValidatePerson(v *validator.Validator, person *Person) {
	v.Check(person.FirstName != "", "first_name", "must be provided")
	v.Check(len(person.FirstName) <= 100, "first_name", "must not be more than 100 bytes long")
	v.Check(person.LastName != "", "last_name", "must be provided")
	v.Check(len(person.LastName) <= 100, "last_name", "must not be more than 100 bytes long")
}
