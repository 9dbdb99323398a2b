package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
)

type memoryZone struct {
	zone          models.Zone
	deleted       bool
	subscriptions map[string]models.Subscription
	records       map[string]*memoryRecord
}

type memoryRecord struct {
	record  models.RemoteRecord
	deleted bool
	seq     int64
}

// memoryRecordRepository is the in-process [RecordRepository] used when the
// server runs without a database DSN.
type memoryRecordRepository struct {
	mu    sync.RWMutex
	seq   int64
	zones map[string]map[string]*memoryZone
}

// NewMemoryRecordRepository creates an empty in-memory [RecordRepository].
func NewMemoryRecordRepository() RecordRepository {
	return &memoryRecordRepository{zones: make(map[string]map[string]*memoryZone)}
}

func (m *memoryRecordRepository) CreateZone(_ context.Context, accountID, zone string) (models.Zone, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zones, ok := m.zones[accountID]
	if !ok {
		zones = make(map[string]*memoryZone)
		m.zones[accountID] = zones
	}

	now := time.Now().UTC()
	existing, ok := zones[zone]
	switch {
	case !ok:
		existing = &memoryZone{zone: models.Zone{Name: zone, Generation: 1, CreatedAt: &now}}
		zones[zone] = existing
	case existing.deleted:
		existing.zone.Generation++
		existing.zone.CreatedAt = &now
		existing.deleted = false
	default:
		return existing.zone, nil
	}

	existing.subscriptions = make(map[string]models.Subscription)
	existing.records = make(map[string]*memoryRecord)
	return existing.zone, nil
}

func (m *memoryRecordRepository) GetZone(_ context.Context, accountID, zone string) (models.Zone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return models.Zone{}, err
	}
	return z.zone, nil
}

func (m *memoryRecordRepository) DeleteZone(_ context.Context, accountID, zone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return err
	}
	z.deleted = true
	z.subscriptions = nil
	z.records = nil
	return nil
}

func (m *memoryRecordRepository) SaveSubscription(_ context.Context, accountID string, subscription models.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, err := m.liveZone(accountID, subscription.Zone)
	if err != nil {
		return err
	}
	z.subscriptions[subscription.ID] = subscription
	return nil
}

func (m *memoryRecordRepository) GetSubscription(_ context.Context, accountID, zone, id string) (models.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return models.Subscription{}, ErrSubscriptionNotFound
	}
	subscription, ok := z.subscriptions[id]
	if !ok {
		return models.Subscription{}, ErrSubscriptionNotFound
	}
	return subscription, nil
}

func (m *memoryRecordRepository) ListSubscriptions(_ context.Context, accountID, zone string) ([]models.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return nil, nil
	}

	subscriptions := make([]models.Subscription, 0, len(z.subscriptions))
	for _, subscription := range z.subscriptions {
		subscriptions = append(subscriptions, subscription)
	}
	sort.Slice(subscriptions, func(i, j int) bool { return subscriptions[i].ID < subscriptions[j].ID })
	return subscriptions, nil
}

func (m *memoryRecordRepository) GetRecords(_ context.Context, accountID, zone string, names []string) (map[string]models.RemoteRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make(map[string]models.RemoteRecord, len(names))
	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return records, nil
	}

	for _, name := range names {
		stored, ok := z.records[name]
		if ok && !stored.deleted {
			records[name] = stored.record.Clone()
		}
	}
	return records, nil
}

func (m *memoryRecordRepository) SaveRecords(_ context.Context, accountID, zone string, records []models.RemoteRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return err
	}

	for _, record := range records {
		m.seq++
		stored := record.Clone()
		stored.Zone = zone
		z.records[record.Name] = &memoryRecord{record: stored, seq: m.seq}
	}
	return nil
}

func (m *memoryRecordRepository) DeleteRecords(_ context.Context, accountID, zone string, names []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, name := range names {
		stored, ok := z.records[name]
		if !ok || stored.deleted {
			continue
		}
		m.seq++
		stored.deleted = true
		stored.seq = m.seq
		stored.record.ModifiedAt = &now
	}
	return nil
}

func (m *memoryRecordRepository) GetChanges(_ context.Context, accountID, zone string, afterSeq int64, limit int) ([]models.RecordChange, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	z, err := m.liveZone(accountID, zone)
	if err != nil {
		return nil, err
	}

	changes := make([]models.RecordChange, 0)
	for _, stored := range z.records {
		if stored.seq <= afterSeq {
			continue
		}
		change := models.RecordChange{Seq: stored.seq, Record: stored.record.Clone(), Deleted: stored.deleted}
		if stored.deleted {
			change.Record.Fields = nil
		}
		changes = append(changes, change)
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Seq < changes[j].Seq })

	if limit > 0 && len(changes) > limit {
		changes = changes[:limit]
	}
	return changes, nil
}

func (m *memoryRecordRepository) liveZone(accountID, zone string) (*memoryZone, error) {
	z, ok := m.zones[accountID][zone]
	if !ok || z.deleted {
		return nil, ErrZoneNotFound
	}
	return z, nil
}
