package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/models"
)

const (
	zonesPath         = "/api/zones"
	zonePath          = "/api/zones/{zone}"
	subscriptionsPath = "/api/zones/{zone}/subscriptions"
	subscriptionPath  = "/api/zones/{zone}/subscriptions/{id}"
	modifyPath        = "/api/zones/{zone}/records/modify"
	changesPath       = "/api/zones/{zone}/changes"
	accountPath       = "/api/account"
	notificationsPath = "/api/notifications"
)

type httpRecordStore struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPRecordStore constructs the HTTP/REST implementation of
// [RecordStore] for the record store at cfg.HTTPAddress. cfg.Token is sent as
// a bearer token with every request.
func NewHTTPRecordStore(cfg config.ClientAdapter, logger *logger.Logger) (RecordStore, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}

	return &httpRecordStore{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout),
		token:  strings.TrimSpace(cfg.Token),
		logger: logger,
	}, nil
}

func (h *httpRecordStore) CreateZone(ctx context.Context, zone string) (models.Zone, error) {
	var created models.Zone

	resp, err := h.request(ctx).
		SetBody(models.Zone{Name: zone}).
		SetResult(&created).
		Post(zonesPath)
	if err = h.check(ctx, "create zone", resp, err); err != nil {
		return models.Zone{}, err
	}

	return created, nil
}

func (h *httpRecordStore) FetchZone(ctx context.Context, zone string) (models.Zone, error) {
	var found models.Zone

	resp, err := h.request(ctx).
		SetPathParam("zone", zone).
		SetResult(&found).
		Get(zonePath)
	if err = h.check(ctx, "fetch zone", resp, err); err != nil {
		return models.Zone{}, err
	}

	return found, nil
}

func (h *httpRecordStore) CreateSubscription(ctx context.Context, subscription models.Subscription) (models.Subscription, error) {
	var created models.Subscription

	resp, err := h.request(ctx).
		SetPathParam("zone", subscription.Zone).
		SetBody(subscription).
		SetResult(&created).
		Put(subscriptionsPath)
	if err = h.check(ctx, "create subscription", resp, err); err != nil {
		return models.Subscription{}, err
	}

	return created, nil
}

func (h *httpRecordStore) FetchSubscription(ctx context.Context, zone, id string) (models.Subscription, error) {
	var found models.Subscription

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"zone": zone, "id": id}).
		SetResult(&found).
		Get(subscriptionPath)
	if err = h.check(ctx, "fetch subscription", resp, err); err != nil {
		return models.Subscription{}, err
	}

	return found, nil
}

// ModifyRecords posts the batch. A partially applied batch comes back as a
// 2xx response whose body carries the PARTIAL_FAILURE error next to the
// accepted items; it is returned as both.
func (h *httpRecordStore) ModifyRecords(ctx context.Context, req models.ModifyRequest) (models.ModifyResponse, error) {
	var result models.ModifyResponse

	resp, err := h.request(ctx).
		SetPathParam("zone", req.Zone).
		SetBody(req).
		SetResult(&result).
		Post(modifyPath)
	if err = h.check(ctx, "modify records", resp, err); err != nil {
		return models.ModifyResponse{}, err
	}

	if result.Error != nil {
		h.logger.Debug().
			Str("func", "httpRecordStore.ModifyRecords").
			Str("zone", req.Zone).
			Str("code", string(result.Error.Code)).
			Int("saved", len(result.Saved)).
			Int("deleted", len(result.Deleted)).
			Msg("batch partially applied")
		return result, result.Error
	}

	return result, nil
}

func (h *httpRecordStore) FetchChanges(ctx context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
	var result models.ChangesResponse

	r := h.request(ctx).
		SetPathParam("zone", req.Zone).
		SetResult(&result)
	if len(req.Token) > 0 {
		r.SetQueryParam("token", base64.RawURLEncoding.EncodeToString(req.Token))
	}
	if req.Limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(req.Limit))
	}

	resp, err := r.Get(changesPath)
	if err = h.check(ctx, "fetch changes", resp, err); err != nil {
		return models.ChangesResponse{}, err
	}

	return result, nil
}

func (h *httpRecordStore) AccountStatus(ctx context.Context) (models.AccountStatus, error) {
	var info models.AccountInfo

	resp, err := h.request(ctx).
		SetResult(&info).
		Get(accountPath)
	if err = h.check(ctx, "account status", resp, err); err != nil {
		return models.AccountStatusCouldNotDetermine, err
	}
	if info.Status == "" {
		return models.AccountStatusCouldNotDetermine, fmt.Errorf("account status: %w",
			models.NewRemoteError(models.ErrorCodeInternalError, "empty account status"))
	}

	return info.Status, nil
}

func (h *httpRecordStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// check folds the transport error and the response status into one error.
func (h *httpRecordStore) check(ctx context.Context, op string, resp *resty.Response, err error) error {
	if err != nil {
		mapped := mapTransportError(ctx, op, err)
		h.logger.Err(err).
			Str("func", "httpRecordStore.check").
			Str("op", op).
			Msg("request failed")
		return mapped
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpRecordStore.check").
			Str("op", op).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("record store returned an error")
		return err
	}

	return nil
}
