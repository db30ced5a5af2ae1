package idgen

import "time"

const (
	dbPerms       = 0600
	dbOpenTimeout = time.Minute
	dbFileName    = "campus_registry.db"

	// bucket and key names
	sequences = "sequences"
	crnKey    = "crn"
	memberKey = "member"

	// counters start above this value, so the first issued identifiers are
	// 1001 and "MEM1001"
	counterBase = 1000

	MemberIDPrefix = "MEM"
)
