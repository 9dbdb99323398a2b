package models

// RecordChange is one entry of a zone's change log as kept by the record
// store. Seq grows with every accepted write in the store; a deleted record
// keeps its name and type so fetches can report the tombstone.
type RecordChange struct {
	Seq     int64
	Record  RemoteRecord
	Deleted bool
}
