package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

// changeAccumulator collects the changes of the pages fetched since the last
// checkpoint. It is only touched on the serial queue.
type changeAccumulator[T models.Record] struct {
	updated []T
	deleted []string
}

func (a *changeAccumulator[T]) reset() {
	a.updated = nil
	a.deleted = nil
}

// fetchRemoteChanges starts a fetch run from the persisted token. A trigger
// that arrives while a run is in flight is folded into one follow-up run.
func (e *SyncEngine[T]) fetchRemoteChanges() {
	if e.fetchInFlight {
		e.fetchAgain = true
		return
	}
	if !e.ensureBootstrapped() {
		return
	}

	token, err := e.state.Token(e.ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.fetchRemoteChanges").Msg("failed to read change token")
		return
	}

	e.logger.Debug().
		Str("func", "SyncEngine.fetchRemoteChanges").
		Bool("full", token == nil).
		Msg("fetching remote changes")

	e.fetchInFlight = true
	e.fetchPage(token, &changeAccumulator[T]{})
}

func (e *SyncEngine[T]) fetchPage(token []byte, acc *changeAccumulator[T]) {
	req := models.ChangesRequest{Zone: e.zone, Token: token, Limit: e.pageSize}

	e.dispatcher.Go(func(ctx context.Context) {
		resp, err := e.remote.FetchChanges(ctx, req)
		e.dispatcher.Submit(func() {
			e.handleChangesPage(resp, err, acc)
		})
	})
}

func (e *SyncEngine[T]) handleChangesPage(resp models.ChangesResponse, err error, acc *changeAccumulator[T]) {
	if err != nil {
		e.handleFetchError(err)
		return
	}

	for _, record := range resp.Changed {
		if record.Type != e.recordType {
			continue
		}
		value, err := e.codec.Decode(record)
		if err != nil {
			e.logger.Err(err).
				Str("func", "SyncEngine.handleChangesPage").
				Str("record", record.Name).
				Msg("failed to decode changed record, skipping")
			continue
		}
		acc.updated = append(acc.updated, value)
	}
	for _, deleted := range resp.Deleted {
		if deleted.Type != e.recordType {
			continue
		}
		acc.deleted = append(acc.deleted, deleted.Name)
	}

	e.checkpoint(resp.Token, acc)

	if resp.MoreComing {
		e.fetchPage(resp.Token, acc)
		return
	}

	e.logger.Debug().Str("func", "SyncEngine.handleChangesPage").Msg("remote changes fetched")
	e.finishFetch()
}

// checkpoint emits what was accumulated so far and persists token, so a
// later failure never loses a change the store has moved past.
func (e *SyncEngine[T]) checkpoint(token []byte, acc *changeAccumulator[T]) {
	if len(acc.updated) > 0 {
		e.emit(models.Updated(acc.updated))
	}
	if len(acc.deleted) > 0 {
		e.emit(models.Deleted[T](acc.deleted))
	}
	acc.reset()

	if token == nil {
		return
	}
	if err := e.state.SetToken(e.ctx, token); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.checkpoint").Msg("failed to persist change token")
	}
}

func (e *SyncEngine[T]) handleFetchError(err error) {
	if e.stopping() {
		return
	}

	c := ClassifyError(err, e.defaultRetryDelay)

	switch c.Kind {
	case KindTokenExpired:
		e.logger.Info().Str("func", "SyncEngine.handleFetchError").Msg("change token expired, fetching everything")
		if err = e.state.SetToken(e.ctx, nil); err != nil {
			e.logger.Err(err).Str("func", "SyncEngine.handleFetchError").Msg("failed to reset change token")
			e.finishFetch()
			return
		}
		e.restartFetch()

	case KindZoneMissing:
		e.logger.Warn().Err(err).Str("func", "SyncEngine.handleFetchError").Msg("zone missing, recreating it")
		e.invalidateZone()
		e.restartFetch()

	case KindRetryableWithDelay:
		e.logger.Warn().Err(err).
			Str("func", "SyncEngine.handleFetchError").
			Dur("retry_after", c.RetryAfter).
			Msg("fetch failed, retrying")
		e.fetchInFlight = false
		e.fetchAgain = false
		e.dispatcher.SubmitAfter(c.RetryAfter, e.fetchRemoteChanges)

	case KindConnectivityUnavailable:
		e.logger.Warn().Err(err).Str("func", "SyncEngine.handleFetchError").Msg("store unreachable, fetch stopped")
		e.finishFetch()

	default:
		e.logger.Err(err).
			Str("func", "SyncEngine.handleFetchError").
			Str("kind", c.Kind.String()).
			Msg("fetch failed")
		e.finishFetch()
	}
}

// restartFetch starts a new run in place of the failed one. The new run, or
// the next bootstrap when it cannot start, covers the triggers folded into
// the failed run.
func (e *SyncEngine[T]) restartFetch() {
	e.fetchInFlight = false
	e.fetchAgain = false
	e.fetchRemoteChanges()
}

func (e *SyncEngine[T]) finishFetch() {
	e.fetchInFlight = false
	if e.fetchAgain {
		e.fetchAgain = false
		e.fetchRemoteChanges()
	}
}
