package service

import (
	"github.com/MKhiriev/go-record-sync/models"
)

// ConflictResolver decides the outcome of a rejected write. client is the
// version the engine tried to save and server the version the store holds.
// Returning false abandons the write.
type ConflictResolver[T models.Record] func(client, server T) (T, bool)

// LatestModifiedResolver keeps the side with the newer server modification
// time. The server copy wins when either time is unknown or both are equal.
func LatestModifiedResolver[T models.Record](client, server T) (T, bool) {
	clientAt, clientOK := models.LastModified(client.SystemFields())
	serverAt, serverOK := models.LastModified(server.SystemFields())

	if clientOK && serverOK && clientAt.After(serverAt) {
		return client, true
	}
	return server, true
}

// resolveConflict turns a SERVER_RECORD_CHANGED error into the record to send
// next. The resolved fields are laid over the server record so the write
// carries the server's change tag.
func (e *SyncEngine[T]) resolveConflict(remoteErr *models.RemoteError) (models.RemoteRecord, bool) {
	if remoteErr == nil || remoteErr.ClientRecord == nil || remoteErr.ServerRecord == nil {
		e.logger.Warn().
			Str("func", "SyncEngine.resolveConflict").
			Msg("conflict without client and server records")
		return models.RemoteRecord{}, false
	}

	client, err := e.codec.Decode(*remoteErr.ClientRecord)
	if err != nil {
		e.logger.Err(err).
			Str("func", "SyncEngine.resolveConflict").
			Str("record", remoteErr.ClientRecord.Name).
			Msg("failed to decode client record")
		return models.RemoteRecord{}, false
	}

	server, err := e.codec.Decode(*remoteErr.ServerRecord)
	if err != nil {
		e.logger.Err(err).
			Str("func", "SyncEngine.resolveConflict").
			Str("record", remoteErr.ServerRecord.Name).
			Msg("failed to decode server record")
		return models.RemoteRecord{}, false
	}

	resolved, ok := e.resolver(client, server)
	if !ok {
		e.logger.Info().
			Str("func", "SyncEngine.resolveConflict").
			Str("record", remoteErr.ClientRecord.Name).
			Msg("conflict left unresolved, write abandoned")
		return models.RemoteRecord{}, false
	}

	encoded, err := e.codec.Encode(resolved)
	if err != nil {
		e.logger.Err(err).
			Str("func", "SyncEngine.resolveConflict").
			Str("record", remoteErr.ClientRecord.Name).
			Msg("failed to encode resolved record")
		return models.RemoteRecord{}, false
	}

	out := remoteErr.ServerRecord.Clone()
	out.Fields = encoded.Fields
	return out, true
}
