package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

// recordRepository is the PostgreSQL-backed [RecordRepository]. Records live
// in one table; a write bumps the row's seq from the shared "record_seq"
// sequence, which doubles as the zone change log.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) CreateZone(ctx context.Context, accountID, zone string) (models.Zone, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateZoneQuery(accountID, zone)
	if err != nil {
		return models.Zone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Zone
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&created.Name, &created.Generation, &created.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreateZone").
			Str("account_id", accountID).
			Str("zone", zone).
			Msg("failed to create zone")
		return models.Zone{}, r.wrapError(ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "recordRepository.CreateZone").
		Str("zone", zone).
		Int64("generation", created.Generation).
		Msg("zone is ready")

	return created, nil
}

func (r *recordRepository) GetZone(ctx context.Context, accountID, zone string) (models.Zone, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetZoneQuery(accountID, zone)
	if err != nil {
		return models.Zone{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Zone
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&found.Name, &found.Generation, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Zone{}, ErrZoneNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetZone").
			Str("account_id", accountID).
			Str("zone", zone).
			Msg("failed to get zone")
		return models.Zone{}, r.wrapError(ErrScanningRow, err)
	}

	return found, nil
}

// DeleteZone marks the zone deleted and drops its records and subscriptions
// in one transaction.
func (r *recordRepository) DeleteZone(ctx context.Context, accountID, zone string) error {
	log := logger.FromContext(ctx)

	markQuery, markArgs, err := buildMarkZoneDeletedQuery(accountID, zone)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	recordsQuery, recordsArgs, err := buildDeleteZoneRecordsQuery(accountID, zone)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	subscriptionsQuery, subscriptionsArgs, err := buildDeleteZoneSubscriptionsQuery(accountID, zone)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteZone").
			Str("zone", zone).
			Msg("failed to begin transaction")
		return r.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, markQuery, markArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteZone").
			Str("zone", zone).
			Msg("failed to mark zone deleted")
		return r.wrapError(ErrExecutingStatement, err)
	}
	if affected, affectedErr := result.RowsAffected(); affectedErr == nil && affected == 0 {
		return ErrZoneNotFound
	}

	if _, err = tx.ExecContext(ctx, recordsQuery, recordsArgs...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteZone").
			Str("zone", zone).
			Msg("failed to drop zone records")
		return r.wrapError(ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, subscriptionsQuery, subscriptionsArgs...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteZone").
			Str("zone", zone).
			Msg("failed to drop zone subscriptions")
		return r.wrapError(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteZone").
			Str("zone", zone).
			Msg("failed to commit transaction")
		return r.wrapError(ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "recordRepository.DeleteZone").
		Str("account_id", accountID).
		Str("zone", zone).
		Msg("zone deleted")
	return nil
}

func (r *recordRepository) SaveSubscription(ctx context.Context, accountID string, subscription models.Subscription) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSubscriptionQuery(accountID, subscription)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveSubscription").
			Str("zone", subscription.Zone).
			Str("subscription_id", subscription.ID).
			Msg("failed to save subscription")
		return r.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (r *recordRepository) GetSubscription(ctx context.Context, accountID, zone, id string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSubscriptionQuery(accountID, zone, id)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var subscription models.Subscription
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&subscription.ID, &subscription.Zone, &subscription.RecordType)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscription{}, ErrSubscriptionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetSubscription").
			Str("zone", zone).
			Str("subscription_id", id).
			Msg("failed to get subscription")
		return models.Subscription{}, r.wrapError(ErrScanningRow, err)
	}

	return subscription, nil
}

func (r *recordRepository) ListSubscriptions(ctx context.Context, accountID, zone string) ([]models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSubscriptionsQuery(accountID, zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListSubscriptions").
			Str("zone", zone).
			Msg("failed to list subscriptions")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	subscriptions := make([]models.Subscription, 0, 4)
	for rows.Next() {
		var subscription models.Subscription
		if err = rows.Scan(&subscription.ID, &subscription.Zone, &subscription.RecordType); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		subscriptions = append(subscriptions, subscription)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapError(ErrScanningRows, err)
	}

	return subscriptions, nil
}

func (r *recordRepository) GetRecords(ctx context.Context, accountID, zone string, names []string) (map[string]models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	records := make(map[string]models.RemoteRecord, len(names))
	if len(names) == 0 {
		return records, nil
	}

	query, args, err := buildGetRecordsQuery(accountID, zone, names)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Str("zone", zone).
			Int("names_count", len(names)).
			Msg("failed to execute query for getting records")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			record models.RemoteRecord
			fields []byte
		)
		if err = rows.Scan(&record.Name, &record.Type, &record.ChangeTag, &record.CreatedAt, &record.ModifiedAt, &fields); err != nil {
			log.Err(err).
				Str("func", "recordRepository.GetRecords").
				Str("zone", zone).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if record.Fields, err = decodeFields(fields); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		record.Zone = zone
		records[record.Name] = record
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetRecords").
			Str("zone", zone).
			Msg("error occurred during rows iteration")
		return nil, r.wrapError(ErrScanningRows, err)
	}

	return records, nil
}

// SaveRecords upserts every record inside one transaction. Either all of them
// reach the change log or none does.
func (r *recordRepository) SaveRecords(ctx context.Context, accountID, zone string, records []models.RemoteRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecords").
			Int("records_count", len(records)).
			Msg("failed to begin transaction")
		return r.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, record := range records {
		query, args, buildErr := buildSaveRecordQuery(accountID, zone, record)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "recordRepository.SaveRecords").
				Int("iteration", idx+1).
				Str("zone", zone).
				Str("name", record.Name).
				Msg("failed to save record")
			return r.wrapError(ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecords").
			Int("records_count", len(records)).
			Msg("failed to commit transaction")
		return r.wrapError(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "recordRepository.SaveRecords").
		Str("zone", zone).
		Int("records_count", len(records)).
		Msg("records saved")
	return nil
}

func (r *recordRepository) DeleteRecords(ctx context.Context, accountID, zone string, names []string) error {
	log := logger.FromContext(ctx)

	if len(names) == 0 {
		return nil
	}

	query, args, err := buildDeleteRecordsQuery(accountID, zone, names)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecords").
			Str("zone", zone).
			Int("names_count", len(names)).
			Msg("failed to delete records")
		return r.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (r *recordRepository) GetChanges(ctx context.Context, accountID, zone string, afterSeq int64, limit int) ([]models.RecordChange, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetChangesQuery(accountID, zone, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetChanges").
			Str("zone", zone).
			Int64("after_seq", afterSeq).
			Msg("failed to execute query for getting changes")
		return nil, r.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.RecordChange, 0, max(limit, 0))
	for rows.Next() {
		var (
			change models.RecordChange
			fields []byte
		)
		record := &change.Record
		if err = rows.Scan(&record.Name, &record.Type, &record.ChangeTag, &record.CreatedAt, &record.ModifiedAt, &fields,
			&change.Deleted, &change.Seq); err != nil {
			log.Err(err).
				Str("func", "recordRepository.GetChanges").
				Str("zone", zone).
				Msg("failed to scan change row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if !change.Deleted {
			if record.Fields, err = decodeFields(fields); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
		}
		record.Zone = zone
		changes = append(changes, change)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapError(ErrScanningRows, err)
	}

	return changes, nil
}

func decodeFields(raw []byte) (map[string]json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode record fields: %w", err)
	}
	return fields, nil
}
