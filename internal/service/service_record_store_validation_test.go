package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-record-sync/internal/mock"
	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordStoreValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRecordStoreService(ctrl)
	svc := NewRecordStoreValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.CreateZone(ctx, "", models.Zone{Name: testZone})
	requireRemoteCode(t, err, models.ErrorCodeNotAuthenticated)

	_, err = svc.CreateZone(ctx, testAccount, models.Zone{Name: "bad/zone"})
	requireRemoteCode(t, err, models.ErrorCodeInvalidArguments)

	_, err = svc.FetchSubscription(ctx, testAccount, testZone, "")
	requireRemoteCode(t, err, models.ErrorCodeInvalidArguments)

	_, err = svc.ModifyRecords(ctx, testAccount, models.ModifyRequest{Zone: testZone, SavePolicy: models.SavePolicyAllKeys})
	requireRemoteCode(t, err, models.ErrorCodeInvalidArguments)

	_, err = svc.FetchChanges(ctx, testAccount, models.ChangesRequest{Zone: testZone, Limit: -5})
	requireRemoteCode(t, err, models.ErrorCodeInvalidArguments)

	err = svc.DeleteZone(ctx, testAccount, "")
	requireRemoteCode(t, err, models.ErrorCodeInvalidArguments)
}

func TestRecordStoreValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRecordStoreService(ctrl)
	svc := NewRecordStoreValidationService().Wrap(inner)
	ctx := context.Background()

	req := models.ModifyRequest{
		Zone:       testZone,
		Save:       []models.RemoteRecord{rawRecord("r1", "x")},
		SavePolicy: models.SavePolicyIfServerRecordUnchanged,
	}
	inner.EXPECT().ModifyRecords(ctx, testAccount, req).Return(models.ModifyResponse{Saved: req.Save}, nil)
	inner.EXPECT().FetchZone(ctx, testAccount, testZone).Return(models.Zone{Name: testZone}, nil)

	resp, err := svc.ModifyRecords(ctx, testAccount, req)
	require.NoError(t, err)
	assert.Len(t, resp.Saved, 1)

	zone, err := svc.FetchZone(ctx, testAccount, testZone)
	require.NoError(t, err)
	assert.Equal(t, testZone, zone.Name)
}
