package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-record-sync/models"
)

const (
	zonesTable         = "zones"
	subscriptionsTable = "subscriptions"
	recordsTable       = "records"

	nextRecordSeq = "nextval('record_seq')"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var recordColumns = []string{
	"name", "type", "change_tag", "created_at", "modified_at", "fields",
}

// buildCreateZoneQuery inserts the zone or revives a deleted one. A revived
// zone gets the next generation so old change tokens stop matching.
func buildCreateZoneQuery(accountID, zone string) (string, []any, error) {
	return psql.
		Insert(zonesTable).
		Columns("account_id", "name").
		Values(accountID, zone).
		Suffix(`ON CONFLICT (account_id, name) DO UPDATE SET
			generation = CASE WHEN zones.deleted THEN zones.generation + 1 ELSE zones.generation END,
			created_at = CASE WHEN zones.deleted THEN NOW() ELSE zones.created_at END,
			deleted = FALSE
		RETURNING name, generation, created_at`).
		ToSql()
}

func buildGetZoneQuery(accountID, zone string) (string, []any, error) {
	return psql.
		Select("name", "generation", "created_at").
		From(zonesTable).
		Where(sq.Eq{"account_id": accountID, "name": zone, "deleted": false}).
		ToSql()
}

func buildMarkZoneDeletedQuery(accountID, zone string) (string, []any, error) {
	return psql.
		Update(zonesTable).
		Set("deleted", true).
		Where(sq.Eq{"account_id": accountID, "name": zone, "deleted": false}).
		ToSql()
}

func buildDeleteZoneRecordsQuery(accountID, zone string) (string, []any, error) {
	return psql.
		Delete(recordsTable).
		Where(sq.Eq{"account_id": accountID, "zone": zone}).
		ToSql()
}

func buildDeleteZoneSubscriptionsQuery(accountID, zone string) (string, []any, error) {
	return psql.
		Delete(subscriptionsTable).
		Where(sq.Eq{"account_id": accountID, "zone": zone}).
		ToSql()
}

func buildSaveSubscriptionQuery(accountID string, subscription models.Subscription) (string, []any, error) {
	return psql.
		Insert(subscriptionsTable).
		Columns("account_id", "zone", "id", "record_type").
		Values(accountID, subscription.Zone, subscription.ID, subscription.RecordType).
		Suffix("ON CONFLICT (account_id, zone, id) DO UPDATE SET record_type = excluded.record_type").
		ToSql()
}

func buildGetSubscriptionQuery(accountID, zone, id string) (string, []any, error) {
	return psql.
		Select("id", "zone", "record_type").
		From(subscriptionsTable).
		Where(sq.Eq{"account_id": accountID, "zone": zone, "id": id}).
		ToSql()
}

func buildListSubscriptionsQuery(accountID, zone string) (string, []any, error) {
	return psql.
		Select("id", "zone", "record_type").
		From(subscriptionsTable).
		Where(sq.Eq{"account_id": accountID, "zone": zone}).
		OrderBy("id").
		ToSql()
}

func buildGetRecordsQuery(accountID, zone string, names []string) (string, []any, error) {
	return psql.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"account_id": accountID, "zone": zone, "deleted": false}).
		Where(sq.Eq{"name": names}).
		ToSql()
}

// buildSaveRecordQuery upserts one record. Every write moves the record to
// the head of the change log.
func buildSaveRecordQuery(accountID, zone string, record models.RemoteRecord) (string, []any, error) {
	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return "", nil, fmt.Errorf("encode fields of %s: %w", record.Name, err)
	}

	return psql.
		Insert(recordsTable).
		Columns("account_id", "zone", "name", "type", "change_tag", "created_at", "modified_at", "fields", "deleted", "seq").
		Values(accountID, zone, record.Name, record.Type, record.ChangeTag, record.CreatedAt, record.ModifiedAt,
			string(fields), false, sq.Expr(nextRecordSeq)).
		Suffix(`ON CONFLICT (account_id, zone, name) DO UPDATE SET
			type = excluded.type,
			change_tag = excluded.change_tag,
			created_at = excluded.created_at,
			modified_at = excluded.modified_at,
			fields = excluded.fields,
			deleted = FALSE,
			seq = excluded.seq`).
		ToSql()
}

func buildDeleteRecordsQuery(accountID, zone string, names []string) (string, []any, error) {
	return psql.
		Update(recordsTable).
		Set("deleted", true).
		Set("modified_at", sq.Expr("NOW()")).
		Set("seq", sq.Expr(nextRecordSeq)).
		Where(sq.Eq{"account_id": accountID, "zone": zone, "deleted": false}).
		Where(sq.Eq{"name": names}).
		ToSql()
}

func buildGetChangesQuery(accountID, zone string, afterSeq int64, limit int) (string, []any, error) {
	builder := psql.
		Select(append(recordColumns, "deleted", "seq")...).
		From(recordsTable).
		Where(sq.Eq{"account_id": accountID, "zone": zone}).
		Where(sq.Gt{"seq": afterSeq}).
		OrderBy("seq")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return builder.ToSql()
}
