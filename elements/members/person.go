package members

import (
	"github.com/DAv10195/campus_registry/util/dates"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "members")

var validate = validator.New()

type Address struct {
	City	string	`json:"city"`
	Country	string	`json:"country"`
	ZipCode	string	`json:"zip_code"`
}

// fields shared by all members of the campus, embedded into Employee and
// Student by composition
type Person struct {
	Name	string		`json:"Name" validate:"required"`
	ID		string		`json:"ID"`
	DOB		dates.Date	`json:"DOB"`
	Address	Address		`json:"Address"`
}
