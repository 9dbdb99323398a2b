package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/validators"
	"github.com/MKhiriev/go-record-sync/models"
)

// RecordStoreServiceWrapper defines middleware composition for
// RecordStoreService. Implementations wrap an existing RecordStoreService to
// add behavior such as validation.
type RecordStoreServiceWrapper interface {
	Wrap(RecordStoreService) RecordStoreService // returns a decorated RecordStoreService applying additional behavior
}

// RecordStoreValidationService rejects malformed requests with
// INVALID_ARGUMENTS before they reach the wrapped RecordStoreService.
type RecordStoreValidationService struct {
	inner     RecordStoreService
	validator validators.Validator
}

func NewRecordStoreValidationService() RecordStoreServiceWrapper {
	return &RecordStoreValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordStoreValidationService) CreateZone(ctx context.Context, accountID string, zone models.Zone) (models.Zone, error) {
	if err := v.check(ctx, accountID, zone); err != nil {
		return models.Zone{}, err
	}
	return v.inner.CreateZone(ctx, accountID, zone)
}

func (v *RecordStoreValidationService) FetchZone(ctx context.Context, accountID, zone string) (models.Zone, error) {
	if err := v.check(ctx, accountID, models.Zone{Name: zone}); err != nil {
		return models.Zone{}, err
	}
	return v.inner.FetchZone(ctx, accountID, zone)
}

func (v *RecordStoreValidationService) DeleteZone(ctx context.Context, accountID, zone string) error {
	if err := v.check(ctx, accountID, models.Zone{Name: zone}); err != nil {
		return err
	}
	return v.inner.DeleteZone(ctx, accountID, zone)
}

func (v *RecordStoreValidationService) CreateSubscription(ctx context.Context, accountID string, subscription models.Subscription) (models.Subscription, error) {
	if err := v.check(ctx, accountID, subscription); err != nil {
		return models.Subscription{}, err
	}
	return v.inner.CreateSubscription(ctx, accountID, subscription)
}

func (v *RecordStoreValidationService) FetchSubscription(ctx context.Context, accountID, zone, id string) (models.Subscription, error) {
	subscription := models.Subscription{ID: id, Zone: zone}
	if err := v.check(ctx, accountID, subscription, validators.FieldSubscriptionID, validators.FieldZone); err != nil {
		return models.Subscription{}, err
	}
	return v.inner.FetchSubscription(ctx, accountID, zone, id)
}

func (v *RecordStoreValidationService) ModifyRecords(ctx context.Context, accountID string, req models.ModifyRequest) (models.ModifyResponse, error) {
	if err := v.check(ctx, accountID, req); err != nil {
		return models.ModifyResponse{}, err
	}
	return v.inner.ModifyRecords(ctx, accountID, req)
}

func (v *RecordStoreValidationService) FetchChanges(ctx context.Context, accountID string, req models.ChangesRequest) (models.ChangesResponse, error) {
	if err := v.check(ctx, accountID, req); err != nil {
		return models.ChangesResponse{}, err
	}
	return v.inner.FetchChanges(ctx, accountID, req)
}

func (v *RecordStoreValidationService) Wrap(wrapped RecordStoreService) RecordStoreService {
	v.inner = wrapped
	return v
}

func (v *RecordStoreValidationService) check(ctx context.Context, accountID string, obj any, fields ...string) error {
	if accountID == "" {
		return models.NewRemoteError(models.ErrorCodeNotAuthenticated, "no account")
	}
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return models.NewRemoteError(models.ErrorCodeInvalidArguments, "%v", err)
	}
	return nil
}
