// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

const (
	defaultChangesLimit = 200
	maxChangesLimit     = 1000
)

// recordStoreService implements RecordStoreService on top of a
// store.RecordRepository. Writes are checked against the save policy one
// record at a time; the records that pass are stored together and every
// subscription of the zone is notified.
type recordStoreService struct {
	repo          store.RecordRepository
	notifications NotificationService
	ids           *utils.UUIDGenerator

	maxBatchSize int
	retryAfter   time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewRecordStoreService constructs the record store service. Batches larger
// than cfg.MaxBatchSize are rejected with LIMIT_EXCEEDED and transient
// storage failures carry cfg.RetryAfter as the retry hint.
func NewRecordStoreService(repo store.RecordRepository, notifications NotificationService, cfg config.ServerHTTP, logger *logger.Logger) RecordStoreService {
	return &recordStoreService{
		repo:          repo,
		notifications: notifications,
		ids:           utils.NewUUIDGenerator(),
		maxBatchSize:  cfg.MaxBatchSize,
		retryAfter:    cfg.RetryAfter,
		now:           time.Now,
		logger:        logger,
	}
}

// changeToken is the decoded form of the opaque token handed to clients. A
// token only stays valid for the zone generation that issued it.
type changeToken struct {
	Generation int64 `json:"g"`
	Seq        int64 `json:"s"`
}

func (t changeToken) encode() []byte {
	raw, _ := json.Marshal(t)
	return raw
}

func decodeChangeToken(raw []byte) (changeToken, error) {
	var t changeToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return changeToken{}, err
	}
	if t.Generation < 1 || t.Seq < 0 {
		return changeToken{}, errors.New("malformed change token")
	}
	return t, nil
}

func (s *recordStoreService) CreateZone(ctx context.Context, accountID string, zone models.Zone) (models.Zone, error) {
	created, err := s.repo.CreateZone(ctx, accountID, zone.Name)
	if err != nil {
		return models.Zone{}, s.storageError(ctx, "create zone", err)
	}
	return created, nil
}

func (s *recordStoreService) FetchZone(ctx context.Context, accountID, zone string) (models.Zone, error) {
	found, err := s.repo.GetZone(ctx, accountID, zone)
	if err != nil {
		return models.Zone{}, s.storageError(ctx, "fetch zone", err)
	}
	return found, nil
}

// DeleteZone drops the zone and tells its subscribers, who will recreate it.
func (s *recordStoreService) DeleteZone(ctx context.Context, accountID, zone string) error {
	subscriptions, err := s.repo.ListSubscriptions(ctx, accountID, zone)
	if err != nil {
		return s.storageError(ctx, "list subscriptions", err)
	}

	if err = s.repo.DeleteZone(ctx, accountID, zone); err != nil {
		return s.storageError(ctx, "delete zone", err)
	}

	s.notify(accountID, zone, models.NotificationReasonZoneDeleted, subscriptions)
	return nil
}

func (s *recordStoreService) CreateSubscription(ctx context.Context, accountID string, subscription models.Subscription) (models.Subscription, error) {
	if err := s.repo.SaveSubscription(ctx, accountID, subscription); err != nil {
		return models.Subscription{}, s.storageError(ctx, "create subscription", err)
	}
	return subscription, nil
}

func (s *recordStoreService) FetchSubscription(ctx context.Context, accountID, zone, id string) (models.Subscription, error) {
	found, err := s.repo.GetSubscription(ctx, accountID, zone, id)
	if err != nil {
		return models.Subscription{}, s.storageError(ctx, "fetch subscription", err)
	}
	return found, nil
}

func (s *recordStoreService) ModifyRecords(ctx context.Context, accountID string, req models.ModifyRequest) (models.ModifyResponse, error) {
	log := logger.FromContext(ctx)

	if s.maxBatchSize > 0 && req.Size() > s.maxBatchSize {
		return models.ModifyResponse{}, models.NewRemoteError(models.ErrorCodeLimitExceeded,
			"batch of %d items exceeds the limit of %d", req.Size(), s.maxBatchSize)
	}

	if _, err := s.repo.GetZone(ctx, accountID, req.Zone); err != nil {
		return models.ModifyResponse{}, s.storageError(ctx, "modify records", err)
	}

	names := make([]string, 0, req.Size())
	for _, record := range req.Save {
		names = append(names, record.Name)
	}
	names = append(names, req.Delete...)

	current, err := s.repo.GetRecords(ctx, accountID, req.Zone, names)
	if err != nil {
		return models.ModifyResponse{}, s.storageError(ctx, "load records", err)
	}

	now := s.now().UTC()
	failed := make(map[string]*models.RemoteError)
	accepted := make([]models.RemoteRecord, 0, len(req.Save))
	for _, record := range req.Save {
		existing, exists := current[record.Name]
		if rejection := checkSavePolicy(req.SavePolicy, record, existing, exists); rejection != nil {
			failed[record.Name] = rejection
			continue
		}
		accepted = append(accepted, stampRecord(req.Zone, record, existing, exists, now))
	}

	var resp models.ModifyResponse
	if len(accepted) > 0 {
		if err = s.repo.SaveRecords(ctx, accountID, req.Zone, accepted); err != nil {
			return models.ModifyResponse{}, s.storageError(ctx, "save records", err)
		}
		resp.Saved = accepted
	}

	if len(req.Delete) > 0 {
		if err = s.repo.DeleteRecords(ctx, accountID, req.Zone, req.Delete); err != nil {
			storageErr := s.storageError(ctx, "delete records", err)
			if len(resp.Saved) == 0 && len(failed) == 0 {
				return models.ModifyResponse{}, storageErr
			}
			for _, name := range req.Delete {
				failed[name] = storageErr
			}
		} else {
			resp.Deleted = slices.Clone(req.Delete)
		}
	}

	if len(resp.Saved)+len(resp.Deleted) > 0 {
		s.notifyChanged(ctx, accountID, req.Zone, changedTypes(resp, current))
	}

	log.Debug().
		Str("func", "recordStoreService.ModifyRecords").
		Str("zone", req.Zone).
		Int("saved", len(resp.Saved)).
		Int("deleted", len(resp.Deleted)).
		Int("failed", len(failed)).
		Msg("batch applied")

	if len(failed) > 0 {
		partial := models.NewRemoteError(models.ErrorCodePartialFailure, "%d of %d items failed", len(failed), req.Size())
		partial.PartialErrors = failed
		resp.Error = partial
		return resp, partial
	}

	return resp, nil
}

func (s *recordStoreService) FetchChanges(ctx context.Context, accountID string, req models.ChangesRequest) (models.ChangesResponse, error) {
	zone, err := s.repo.GetZone(ctx, accountID, req.Zone)
	if err != nil {
		return models.ChangesResponse{}, s.storageError(ctx, "fetch changes", err)
	}

	var after int64
	if len(req.Token) > 0 {
		token, decodeErr := decodeChangeToken(req.Token)
		if decodeErr != nil || token.Generation != zone.Generation {
			return models.ChangesResponse{}, models.NewRemoteError(models.ErrorCodeChangeTokenExpired,
				"change token is not valid for zone %q", req.Zone)
		}
		after = token.Seq
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultChangesLimit
	}
	limit = min(limit, maxChangesLimit)

	changes, err := s.repo.GetChanges(ctx, accountID, req.Zone, after, limit+1)
	if err != nil {
		return models.ChangesResponse{}, s.storageError(ctx, "fetch changes", err)
	}

	resp := models.ChangesResponse{MoreComing: len(changes) > limit}
	if resp.MoreComing {
		changes = changes[:limit]
	}

	for _, change := range changes {
		after = change.Seq
		if change.Deleted {
			resp.Deleted = append(resp.Deleted, models.DeletedRecord{Name: change.Record.Name, Type: change.Record.Type})
			continue
		}
		resp.Changed = append(resp.Changed, change.Record)
	}
	resp.Token = changeToken{Generation: zone.Generation, Seq: after}.encode()

	return resp, nil
}

// checkSavePolicy returns the per-record error for a save the policy
// rejects. A save without a change tag is a create.
func checkSavePolicy(policy models.SavePolicy, record, existing models.RemoteRecord, exists bool) *models.RemoteError {
	if policy == models.SavePolicyAllKeys {
		return nil
	}

	switch {
	case record.ChangeTag == "" && exists:
		return conflictError(record, existing)
	case record.ChangeTag != "" && !exists:
		return models.NewRemoteError(models.ErrorCodeUnknownItem, "record %q does not exist", record.Name)
	case exists && record.ChangeTag != existing.ChangeTag:
		return conflictError(record, existing)
	default:
		return nil
	}
}

func conflictError(client, server models.RemoteRecord) *models.RemoteError {
	e := models.NewRemoteError(models.ErrorCodeServerRecordChanged, "record %q was changed on the server", client.Name)
	clientCopy, serverCopy := client.Clone(), server.Clone()
	e.ClientRecord = &clientCopy
	e.ServerRecord = &serverCopy
	return e
}

// stampRecord assigns the server-owned system fields of an accepted save.
func stampRecord(zone string, record, existing models.RemoteRecord, exists bool, now time.Time) models.RemoteRecord {
	stored := record.Clone()
	stored.Zone = zone

	created, modified := now, now
	previous := ""
	stored.CreatedAt = &created
	if exists {
		previous = existing.ChangeTag
		if existing.CreatedAt != nil {
			stored.CreatedAt = existing.CreatedAt
		}
	}
	stored.ModifiedAt = &modified
	stored.ChangeTag = utils.ChangeTag(previous, zone, record.Name, now, record.Fields)

	return stored
}

func changedTypes(resp models.ModifyResponse, current map[string]models.RemoteRecord) map[string]struct{} {
	types := make(map[string]struct{})
	for _, record := range resp.Saved {
		types[record.Type] = struct{}{}
	}
	for _, name := range resp.Deleted {
		if record, ok := current[name]; ok {
			types[record.Type] = struct{}{}
		}
	}
	return types
}

// notifyChanged wakes the subscriptions interested in any of types.
func (s *recordStoreService) notifyChanged(ctx context.Context, accountID, zone string, types map[string]struct{}) {
	if s.notifications == nil {
		return
	}

	subscriptions, err := s.repo.ListSubscriptions(ctx, accountID, zone)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordStoreService.notifyChanged").
			Str("zone", zone).
			Msg("failed to list subscriptions, clients will catch up on their next fetch")
		return
	}

	interested := subscriptions[:0:0]
	for _, subscription := range subscriptions {
		if _, ok := types[subscription.RecordType]; ok || subscription.RecordType == "" {
			interested = append(interested, subscription)
		}
	}

	s.notify(accountID, zone, models.NotificationReasonRecordsChanged, interested)
}

func (s *recordStoreService) notify(accountID, zone string, reason models.NotificationReason, subscriptions []models.Subscription) {
	if s.notifications == nil {
		return
	}

	for _, subscription := range subscriptions {
		s.notifications.Publish(accountID, models.Notification{
			ID:             s.ids.Generate(),
			SubscriptionID: subscription.ID,
			Zone:           zone,
			Reason:         reason,
		})
	}
}

// storageError maps a repository failure onto the remote error taxonomy.
func (s *recordStoreService) storageError(ctx context.Context, op string, err error) *models.RemoteError {
	switch {
	case errors.Is(err, store.ErrZoneNotFound):
		return models.NewRemoteError(models.ErrorCodeZoneNotFound, "%s: zone was not found", op)
	case errors.Is(err, store.ErrSubscriptionNotFound):
		return models.NewRemoteError(models.ErrorCodeUnknownItem, "%s: subscription was not found", op)
	case errors.Is(err, store.ErrRetryable):
		logger.FromContext(ctx).Warn().
			Str("func", "recordStoreService.storageError").
			Str("op", op).
			Err(err).
			Dur("retry_after", s.retryAfter).
			Msg("transient storage failure")
		return models.NewRemoteError(models.ErrorCodeZoneBusy, "%s: storage is busy", op).WithRetryAfter(s.retryAfter)
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", "recordStoreService.storageError").
			Str("op", op).
			Msg("storage failure")
		return models.NewRemoteError(models.ErrorCodeInternalError, "%s failed", op)
	}
}
