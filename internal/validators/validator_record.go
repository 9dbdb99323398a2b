package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-record-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldZone targets the zone a request or record is addressed to.
	FieldZone = "zone"

	// FieldName targets the identity of a record.
	FieldName = "name"

	// FieldType targets the record type.
	FieldType = "type"

	// FieldSubscriptionID targets the identifier of a push subscription.
	FieldSubscriptionID = "subscription_id"

	// FieldSave targets the records of a modify batch.
	FieldSave = "save"

	// FieldDelete targets the identities of a modify batch.
	FieldDelete = "delete"

	// FieldSavePolicy targets the precondition of a modify batch.
	FieldSavePolicy = "save_policy"

	// FieldLimit targets the page size of a change fetch.
	FieldLimit = "limit"
)

const maxRecordNameLength = 255

// zoneNamePattern keeps zone names safe to embed in URLs and storage keys.
var zoneNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

var allowedSavePolicies = []models.SavePolicy{
	models.SavePolicyIfServerRecordUnchanged,
	models.SavePolicyAllKeys,
}

// RecordValidator implements the Validator interface for the record store
// request models: Zone, Subscription, RemoteRecord, ModifyRequest and
// ChangesRequest.
//
// It accepts both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator and returns it as the
// Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Zone:
		return v.validateZone(value, fields...)
	case *models.Zone:
		return v.validateZone(*value, fields...)
	case models.Subscription:
		return v.validateSubscription(value, fields...)
	case *models.Subscription:
		return v.validateSubscription(*value, fields...)
	case models.RemoteRecord:
		return v.validateRecord(value, "", fields...)
	case *models.RemoteRecord:
		return v.validateRecord(*value, "", fields...)
	case models.ModifyRequest:
		return v.validateModifyRequest(value, fields...)
	case *models.ModifyRequest:
		return v.validateModifyRequest(*value, fields...)
	case models.ChangesRequest:
		return v.validateChangesRequest(value, fields...)
	case *models.ChangesRequest:
		return v.validateChangesRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateZone(zone models.Zone, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZone}
	}

	for _, f := range fields {
		switch f {
		case FieldZone:
			if !validZoneName(zone.Name) {
				return ErrInvalidZoneName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateSubscription(subscription models.Subscription, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSubscriptionID, FieldZone, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldSubscriptionID:
			if !validRecordName(subscription.ID) {
				return ErrInvalidSubscriptionID
			}
		case FieldZone:
			if !validZoneName(subscription.Zone) {
				return ErrInvalidZoneName
			}
		case FieldType:
			if strings.TrimSpace(subscription.RecordType) == "" {
				return ErrInvalidRecordType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRecord checks a single record. When zone is not empty the record
// must either leave its zone blank or name the same zone.
func (v *RecordValidator) validateRecord(record models.RemoteRecord, zone string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldZone}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !validRecordName(record.Name) {
				return ErrInvalidRecordName
			}
		case FieldType:
			if strings.TrimSpace(record.Type) == "" {
				return ErrInvalidRecordType
			}
		case FieldZone:
			if zone != "" && record.Zone != "" && record.Zone != zone {
				return ErrZoneMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateModifyRequest(request models.ModifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZone, FieldSavePolicy, FieldSave, FieldDelete}
	}

	if request.Size() == 0 {
		return ErrEmptyBatch
	}

	seen := make(map[string]struct{}, request.Size())
	for _, f := range fields {
		switch f {
		case FieldZone:
			if !validZoneName(request.Zone) {
				return ErrInvalidZoneName
			}
		case FieldSavePolicy:
			if !isAllowedSavePolicy(request.SavePolicy) {
				return ErrInvalidSavePolicy
			}
		case FieldSave:
			for i, record := range request.Save {
				if err := v.validateRecord(record, request.Zone); err != nil {
					return fmt.Errorf("validation error at save index %d: %w", i, err)
				}
				if _, dup := seen[record.Name]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateRecordName, record.Name)
				}
				seen[record.Name] = struct{}{}
			}
		case FieldDelete:
			for i, name := range request.Delete {
				if !validRecordName(name) {
					return fmt.Errorf("validation error at delete index %d: %w", i, ErrInvalidRecordName)
				}
				if _, dup := seen[name]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateRecordName, name)
				}
				seen[name] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateChangesRequest(request models.ChangesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldZone, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldZone:
			if !validZoneName(request.Zone) {
				return ErrInvalidZoneName
			}
		case FieldLimit:
			if request.Limit < 0 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validZoneName(name string) bool {
	return zoneNamePattern.MatchString(name)
}

func validRecordName(name string) bool {
	return strings.TrimSpace(name) != "" &&
		len(name) <= maxRecordNameLength &&
		utf8.ValidString(name) &&
		!strings.ContainsAny(name, "/\x00")
}

func isAllowedSavePolicy(policy models.SavePolicy) bool {
	for _, allowed := range allowedSavePolicies {
		if policy == allowed {
			return true
		}
	}
	return false
}
