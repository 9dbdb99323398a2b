package models

import "time"

// Zone is a namespaced remote partition holding one record type's data for
// one account.
type Zone struct {
	Name string `json:"name"`

	// Generation changes every time the zone is recreated. Change tokens
	// issued for an older generation are rejected as expired.
	Generation int64 `json:"generation,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Subscription asks the server to push a [Notification] whenever records of
// RecordType change in Zone.
type Subscription struct {
	ID         string `json:"id"`
	Zone       string `json:"zone"`
	RecordType string `json:"record_type"`
}

// NotificationReason describes why a notification was sent.
type NotificationReason string

const (
	// NotificationReasonRecordsChanged is sent after records were written.
	NotificationReasonRecordsChanged NotificationReason = "records_changed"
	// NotificationReasonZoneDeleted is sent after the zone was removed.
	NotificationReasonZoneDeleted NotificationReason = "zone_deleted"
)

// Notification is the push payload delivered to subscribed clients.
type Notification struct {
	ID             string             `json:"id"`
	SubscriptionID string             `json:"subscription_id"`
	Zone           string             `json:"zone"`
	Reason         NotificationReason `json:"reason"`
}
