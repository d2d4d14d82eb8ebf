package profile

// MaxActivityLog bounds a profile's activity log. Older entries are
// evicted FIFO once the cap is exceeded.
const MaxActivityLog = 50

// CompactLog returns the most recent MaxActivityLog entries of the
// given log, relative order preserved. Pure; must run after every
// append and before persistence.
func CompactLog(log []ActivityRecord) []ActivityRecord {
	if len(log) <= MaxActivityLog {
		return log
	}
	return log[len(log)-MaxActivityLog:]
}
