package members

const (
	// employee salary is derived: base plus a bonus per assigned course
	BaseSalary     = 30000
	PerCourseBonus = 5000

	// student registration limits
	MaxCoursesPerStudent      = 5
	MaxBalanceForRegistration = 10000
)
