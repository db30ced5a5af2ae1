package courses

import (
	"github.com/DAv10195/campus_registry/idgen"
	"github.com/DAv10195/campus_registry/store"
	"github.com/DAv10195/campus_registry/util/dates"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "courses")

var validate = validator.New()

// course offering. Courses are append only: once added they are never removed
// or modified
type Course struct {
	Subject		string		`json:"Subject" validate:"required"`
	CRN			int			`json:"CRN"`
	StartDate	dates.Date	`json:"Start Date"`
	EndDate		dates.Date	`json:"End Date"`
	StartTime	string		`json:"Start Time"`
	EndTime		string		`json:"End Time"`
	Cost		float64		`json:"Cost" validate:"gte=0"`
}

// create a new course with a freshly drawn CRN and append it to the course store
func New(subject string, startDate, endDate dates.Date, startTime, endTime string, cost float64) (*Course, error) {
	course := &Course{
		Subject: subject,
		StartDate: startDate,
		EndDate: endDate,
		StartTime: startTime,
		EndTime: endTime,
		Cost: cost,
	}
	if err := validate.Struct(course); err != nil {
		return nil, &ErrInvalidCourse{err.Error()}
	}
	crn, err := idgen.NextCRN()
	if err != nil {
		return nil, err
	}
	course.CRN = crn
	records, err := store.Records[Course](store.Courses)
	if err != nil {
		return nil, err
	}
	if err := store.Overwrite(store.Courses, append(records, *course)); err != nil {
		return nil, err
	}
	logger.Debugf("course \"%s\" (crn = %d) added", course.Subject, course.CRN)
	return course, nil
}

// return all persisted courses
func List() ([]Course, error) {
	return store.Records[Course](store.Courses)
}

// return the course with the given CRN if it exists
func GetByCRN(crn int) (*Course, error) {
	records, err := store.Records[Course](store.Courses)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.CRN == crn {
			course := record
			return &course, nil
		}
	}
	return nil, &ErrCourseNotFound{crn}
}

// CostBySubject returns the cost of the first course whose subject equals the
// given one. The returned boolean indicates whether such a course exists
func CostBySubject(subject string) (float64, bool, error) {
	records, err := store.Records[Course](store.Courses)
	if err != nil {
		return 0, false, err
	}
	for _, record := range records {
		if record.Subject == subject {
			return record.Cost, true, nil
		}
	}
	return 0, false, nil
}
