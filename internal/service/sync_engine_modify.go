package service

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
)

// modifyRecords sends one batch on behalf of rc. The outcome is handled on
// the serial queue by handleModifyResult.
func (e *SyncEngine[T]) modifyRecords(save []models.RemoteRecord, del []string, rc recordContext) {
	if len(save) == 0 && len(del) == 0 {
		return
	}
	if !e.ensureBootstrapped() {
		e.inFlightOf(rc).release(save, del)
		return
	}
	e.inFlightOf(rc).hold(save, del)

	req := models.ModifyRequest{
		Zone:       e.zone,
		Save:       save,
		Delete:     del,
		SavePolicy: rc.savePolicy(),
	}

	e.logger.Debug().
		Str("func", "SyncEngine.modifyRecords").
		Str("context", rc.name()).
		Int("save", len(save)).
		Int("delete", len(del)).
		Msg("sending batch")

	e.dispatcher.Go(func(ctx context.Context) {
		resp, err := e.remote.ModifyRecords(ctx, req)
		e.dispatcher.Submit(func() {
			e.handleModifyResult(req, resp, err, rc)
		})
	})
}

// resubmit sends a batch again after delay. Its items stay in flight while
// the timer runs.
func (e *SyncEngine[T]) resubmit(delay time.Duration, save []models.RemoteRecord, del []string, rc recordContext) {
	e.inFlightOf(rc).hold(save, del)
	if delay <= 0 {
		e.modifyRecords(save, del, rc)
		return
	}
	e.dispatcher.SubmitAfter(delay, func() {
		e.modifyRecords(save, del, rc)
	})
}

// handleModifyResult settles a sent batch and then sends whatever rc held
// back while the batch was out.
func (e *SyncEngine[T]) handleModifyResult(req models.ModifyRequest, resp models.ModifyResponse, err error, rc recordContext) {
	e.inFlightOf(rc).release(req.Save, req.Delete)
	e.settleModifyResult(req, resp, err, rc)
	e.sendHeldBack(rc)
}

func (e *SyncEngine[T]) settleModifyResult(req models.ModifyRequest, resp models.ModifyResponse, err error, rc recordContext) {
	if err == nil {
		rc.modelChangeForUpdatedRecords(e.ctx, resp.Saved, resp.Deleted)
		return
	}
	if e.stopping() {
		return
	}

	c := ClassifyError(err, e.defaultRetryDelay)
	log := e.logger.With().
		Str("context", rc.name()).
		Str("kind", c.Kind.String()).
		Int("save", len(req.Save)).
		Int("delete", len(req.Delete)).
		Logger()

	switch c.Kind {
	case KindZoneMissing:
		log.Warn().Err(err).Str("func", "SyncEngine.settleModifyResult").Msg("zone missing, recreating it")
		e.invalidateZone()
		e.resubmit(e.defaultRetryDelay, req.Save, req.Delete, rc)

	case KindCapacityExceeded:
		first, second, ok := bisect(req.Save, req.Delete)
		if !ok {
			log.Error().Err(err).Str("func", "SyncEngine.settleModifyResult").Msg("single item exceeds capacity")
			rc.failedToUpdateRecords(e.ctx, req.Save, req.Delete)
			return
		}
		log.Info().Str("func", "SyncEngine.settleModifyResult").Msg("batch too large, splitting")
		e.resubmit(c.RetryAfter, first.save, first.delete, rc)
		e.resubmit(c.RetryAfter, second.save, second.delete, rc)

	case KindPartialFailure:
		e.handlePartialFailure(req, resp, c.Remote, rc)

	case KindConflict:
		client := req.Save
		if c.Remote.ClientRecord != nil {
			client = []models.RemoteRecord{*c.Remote.ClientRecord}
		}
		resolved, ok := e.resolveConflict(c.Remote)
		if !ok {
			rc.failedToUpdateRecords(e.ctx, client, nil)
			return
		}
		rc.resolved(e.ctx, client[0], resolved)
		e.modifyRecords([]models.RemoteRecord{resolved}, nil, rc)

	case KindConnectivityUnavailable:
		log.Warn().Err(err).Str("func", "SyncEngine.settleModifyResult").Msg("store unreachable, batch kept for the next sync")

	case KindUnknownItem:
		log.Debug().Str("func", "SyncEngine.settleModifyResult").Msg("items already gone, dropping them")
		rc.discard(e.ctx, req.Save, req.Delete)

	case KindRetryableWithDelay:
		log.Warn().Err(err).
			Str("func", "SyncEngine.settleModifyResult").
			Dur("retry_after", c.RetryAfter).
			Msg("batch failed, retrying")
		e.resubmit(c.RetryAfter, req.Save, req.Delete, rc)

	default:
		log.Error().Err(err).Str("func", "SyncEngine.settleModifyResult").Msg("batch failed permanently")
		rc.failedToUpdateRecords(e.ctx, req.Save, req.Delete)
	}
}

// handlePartialFailure acknowledges the accepted items and sorts the failed
// ones into dropped, resolved and resubmitted.
func (e *SyncEngine[T]) handlePartialFailure(req models.ModifyRequest, resp models.ModifyResponse, remoteErr *models.RemoteError, rc recordContext) {
	rc.modelChangeForUpdatedRecords(e.ctx, resp.Saved, resp.Deleted)

	byName := make(map[string]models.RemoteRecord, len(req.Save))
	for _, r := range req.Save {
		byName[r.Name] = r
	}

	names := make([]string, 0, len(remoteErr.PartialErrors))
	for name := range remoteErr.PartialErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		retrySave, failedSave []models.RemoteRecord
		retryDelete, failed   []string
		delay                 time.Duration
		zoneMissing           bool
	)

	for _, name := range names {
		itemErr := remoteErr.PartialErrors[name]
		record, isSave := byName[name]
		isDelete := slices.Contains(req.Delete, name)
		if !isSave && !isDelete {
			continue
		}

		ic := ClassifyError(itemErr, e.defaultRetryDelay)
		retry := false

		switch ic.Kind {
		case KindConflict:
			if !isSave {
				break
			}
			if resolved, ok := e.resolveConflict(itemErr); ok {
				rc.resolved(e.ctx, record, resolved)
				retrySave = append(retrySave, resolved)
				continue
			}
		case KindCapacityExceeded, KindRetryableWithDelay:
			retry = true
			delay = max(delay, ic.RetryAfter)
		case KindZoneMissing:
			retry = true
			zoneMissing = true
		}

		switch {
		case retry && isSave:
			retrySave = append(retrySave, record)
		case retry:
			retryDelete = append(retryDelete, name)
		case isSave:
			failedSave = append(failedSave, record)
		default:
			failed = append(failed, name)
		}
	}

	e.logger.Info().
		Str("func", "SyncEngine.handlePartialFailure").
		Str("context", rc.name()).
		Int("saved", len(resp.Saved)).
		Int("deleted", len(resp.Deleted)).
		Int("retry", len(retrySave)+len(retryDelete)).
		Int("failed", len(failedSave)+len(failed)).
		Msg("batch partially failed")

	rc.failedToUpdateRecords(e.ctx, failedSave, failed)

	if zoneMissing {
		e.invalidateZone()
	}
	if len(retrySave) > 0 || len(retryDelete) > 0 {
		e.resubmit(delay, retrySave, retryDelete, rc)
	}
}

// sendHeldBack drains the buffer of rc again when an earlier drain skipped
// items that were in flight at the time.
func (e *SyncEngine[T]) sendHeldBack(rc recordContext) {
	flight := e.inFlightOf(rc)
	if !flight.heldBack || e.stopping() {
		return
	}
	flight.heldBack = false

	switch rc.(type) {
	case *uploadContext[T]:
		e.uploadPending()
	case *deleteContext[T]:
		e.deletePending()
	}
}

func (e *SyncEngine[T]) inFlightOf(rc recordContext) *inFlight {
	flight, ok := e.flights[rc.name()]
	if !ok {
		flight = newInFlight()
		e.flights[rc.name()] = flight
	}
	return flight
}

// inFlight holds the identities of one context that belong to a batch which
// was sent or scheduled and is not settled yet. They are kept out of new
// batches so that two writes of one record never overlap.
type inFlight struct {
	names    map[string]struct{}
	heldBack bool
}

func newInFlight() *inFlight {
	return &inFlight{names: make(map[string]struct{})}
}

func (f *inFlight) hold(save []models.RemoteRecord, del []string) {
	for _, r := range save {
		f.names[r.Name] = struct{}{}
	}
	for _, name := range del {
		f.names[name] = struct{}{}
	}
}

func (f *inFlight) release(save []models.RemoteRecord, del []string) {
	for _, r := range save {
		delete(f.names, r.Name)
	}
	for _, name := range del {
		delete(f.names, name)
	}
}

// pending drops the items that are in flight and remembers whether any were
// dropped.
func (f *inFlight) pending(save []models.RemoteRecord, del []string) ([]models.RemoteRecord, []string) {
	held := 0

	outSave := make([]models.RemoteRecord, 0, len(save))
	for _, r := range save {
		if _, ok := f.names[r.Name]; ok {
			held++
			continue
		}
		outSave = append(outSave, r)
	}
	outDelete := make([]string, 0, len(del))
	for _, name := range del {
		if _, ok := f.names[name]; ok {
			held++
			continue
		}
		outDelete = append(outDelete, name)
	}

	f.heldBack = held > 0
	return outSave, outDelete
}

type batch struct {
	save   []models.RemoteRecord
	delete []string
}

// bisect splits a batch into two non-empty halves. Saves and deletes are
// each halved; when that would leave a half empty, saves and deletes go to
// separate halves. A single-item batch cannot be split.
func bisect(save []models.RemoteRecord, del []string) (batch, batch, bool) {
	if len(save)+len(del) < 2 {
		return batch{}, batch{}, false
	}

	saveMid, deleteMid := len(save)/2, len(del)/2
	if saveMid+deleteMid == 0 {
		return batch{save: save}, batch{delete: del}, true
	}

	first := batch{save: save[:saveMid:saveMid], delete: del[:deleteMid:deleteMid]}
	second := batch{save: save[saveMid:], delete: del[deleteMid:]}
	return first, second, true
}
