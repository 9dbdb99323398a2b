package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidZoneName       = errors.New("invalid zone name")
	ErrInvalidRecordName     = errors.New("invalid record name")
	ErrInvalidRecordType     = errors.New("invalid record type")
	ErrZoneMismatch          = errors.New("record zone does not match the request zone")
	ErrInvalidSubscriptionID = errors.New("invalid subscription id")
	ErrInvalidSavePolicy     = errors.New("invalid save policy")
	ErrEmptyBatch            = errors.New("batch has no records to save or delete")
	ErrDuplicateRecordName   = errors.New("record appears more than once in the batch")
	ErrInvalidLimit          = errors.New("invalid page limit")
)
