package store

// Key prefixes of the persisted sync state. The zone name is appended to
// each prefix with a dash.
const (
	uploadBufferKeyPrefix        = "UPLOADBUFFER"
	deleteBufferKeyPrefix        = "DELETEBUFFER"
	changeTokenKeyPrefix         = "TOKEN"
	zoneCreatedKeyPrefix         = "CREATEDZONE"
	subscriptionCreatedKeyPrefix = "CREATEDSUBDB"
)

func zoneKey(prefix, zone string) string {
	return prefix + "-" + zone
}
