package oca

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
)

// defaultTimeout bounds the carrier round trip. The legacy endpoint offers no
// cancellation of its own, so the client enforces one here in addition to
// honoring the caller's context.
const defaultTimeout = 30 * time.Second

// Client implements ports.CarrierGateway against the OCA e-Pak web service.
// It assembles the form-encoded submission, performs the HTTP call, and
// delegates request serialization and response interpretation to the Codec.
//
// Every failure mode is normalized into a typed error (TransportError,
// VendorError, ParseError); nothing panics or leaks raw transport faults past
// this boundary. The endpoint registers a new carrier order on every call, so
// the client performs no retries: retrying a timed-out call blindly could
// create an uncorrelated duplicate order on the carrier side.
type Client struct {
	config     Config
	codec      Codec
	mapper     *RequestMapper
	httpClient *http.Client
}

// NewClient creates a carrier client over an explicit, immutable
// configuration. Passing a nil httpClient selects a client with the default
// bounded timeout.
func NewClient(config Config, codec Codec, httpClient *http.Client) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if codec == nil {
		codec = NewLegacyCodec()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		config:     config,
		codec:      codec,
		mapper:     NewRequestMapper(config),
		httpClient: httpClient,
	}, nil
}

// CreateOrder registers the shipment with the carrier and returns the
// carrier-assigned tracking number. Mapping failures, transport failures,
// vendor-reported errors, and unparseable responses each surface as their
// own typed error so callers can tell which stage failed.
func (c *Client) CreateOrder(
	ctx context.Context,
	s *shipment.Shipment,
	opts ports.CarrierCreateOptions,
) (ports.CarrierOrder, error) {
	req, err := c.mapper.Map(s, opts)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	payload, err := c.codec.Encode(req)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	raw, err := c.post(ctx, payload, opts.ConfirmRetrieval)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	resp, err := c.codec.Decode(raw)
	if err != nil {
		return ports.CarrierOrder{}, err
	}

	return ports.CarrierOrder{
		TrackingNumber: resp.TrackingNumber,
		RawResponse:    resp.Raw,
	}, nil
}

// post submits the form-encoded payload the legacy endpoint expects. The two
// Archivo fields are reserved by the vendor and must be present but empty.
func (c *Client) post(ctx context.Context, payload []byte, confirmRetrieval bool) ([]byte, error) {
	form := url.Values{}
	form.Set("usr", c.config.Username)
	form.Set("psw", c.config.Password)
	form.Set("XML_Datos", string(payload))
	form.Set("ConfirmarRetiro", strconv.FormatBool(confirmRetrieval))
	form.Set("ArchivoCliente", "")
	form.Set("ArchivoProceso", "")

	target := endpointURL(c.config.BaseURL, c.config.TrackingPath, EndpointCreateShipment)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{Op: "build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "post " + EndpointCreateShipment, Cause: err}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Cause: err}
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{
			Op:    "post " + EndpointCreateShipment,
			Cause: fmt.Errorf("unexpected status %s", httpResp.Status),
		}
	}

	return body, nil
}
