package models

// AccountStatus is the availability of the remote account used for sync.
type AccountStatus string

const (
	AccountStatusUnknown           AccountStatus = "unknown"
	AccountStatusAvailable         AccountStatus = "available"
	AccountStatusNoAccount         AccountStatus = "no_account"
	AccountStatusRestricted        AccountStatus = "restricted"
	AccountStatusCouldNotDetermine AccountStatus = "could_not_determine"
)

// String implements fmt.Stringer.
func (s AccountStatus) String() string {
	return string(s)
}

// AccountInfo is the body of the account status endpoint.
type AccountInfo struct {
	AccountID string        `json:"account_id,omitempty"`
	Status    AccountStatus `json:"status"`
}
