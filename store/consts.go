package store

const (
	dirPerms  = 0755
	filePerms = 0600
	fileExt   = ".json"

	// a single record line must fit into this buffer
	maxRecordLen = 1024 * 1024

	// collection names
	Courses   = "courses"
	Employees = "employees"
	Students  = "students"
)
