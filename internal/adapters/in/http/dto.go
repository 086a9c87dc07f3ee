package http

import "time"

// Request and response bodies for the shipment API. Hand-written rather than
// generated; field names follow the JSON conventions of the public surface.

// PartyDTO carries sender or receiver identity data.
type PartyDTO struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// AddressDTO carries a postal address.
type AddressDTO struct {
	Street    string `json:"street"`
	Number    string `json:"number"`
	Floor     string `json:"floor,omitempty"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// PackageDTO carries one package specification. Dimensions are optional but
// must be supplied together.
type PackageDTO struct {
	Weight float64  `json:"weight"`
	Height *float64 `json:"height,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Length *float64 `json:"length,omitempty"`
	Type   string   `json:"type,omitempty"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Sender      PartyDTO     `json:"sender"`
	Receiver    PartyDTO     `json:"receiver"`
	Origin      AddressDTO   `json:"origin"`
	Destination AddressDTO   `json:"destination"`
	Packages    []PackageDTO `json:"packages"`
}

// CreateCarrierShipmentRequest is the body of POST /api/v1/carrier-shipments.
type CreateCarrierShipmentRequest struct {
	CreateShipmentRequest
	ConfirmRetrieval bool   `json:"confirm_retrieval"`
	CompanyInitiated bool   `json:"company_initiated"`
	RemitNumber      string `json:"remit_number,omitempty"`
}

// TransitionShipmentRequest is the body of PATCH /api/v1/shipments/:id/status.
type TransitionShipmentRequest struct {
	Status string `json:"status"`
}

// CreateShipmentResponse acknowledges a registered shipment.
type CreateShipmentResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"tracking_id"`
}

// CreateCarrierShipmentResponse acknowledges a carrier-registered shipment.
type CreateCarrierShipmentResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
}

// ShipmentResponse is the full read model of one shipment.
type ShipmentResponse struct {
	ID           string        `json:"id"`
	TrackingID   string        `json:"tracking_id"`
	Status       string        `json:"status"`
	StatusDate   time.Time     `json:"status_date"`
	CreatedAt    time.Time     `json:"created_at"`
	Payment      string        `json:"payment"`
	SenderName   string        `json:"sender_name"`
	ReceiverName string        `json:"receiver_name"`
	OriginCity   string        `json:"origin_city"`
	DestCity     string        `json:"destination_city"`
	Version      int           `json:"version"`
	Packages     []PackageItem `json:"packages"`
	Logs         []LogItem     `json:"logs"`
}

// PackageItem is one package in a shipment response.
type PackageItem struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Type   string  `json:"type"`
}

// LogItem is one audit trail entry in a shipment or tracking response.
type LogItem struct {
	Action string    `json:"action"`
	Status string    `json:"status,omitempty"`
	From   string    `json:"from,omitempty"`
	To     string    `json:"to,omitempty"`
	Date   time.Time `json:"date"`
}

// TrackingResponse is the public tracking view of one shipment.
type TrackingResponse struct {
	TrackingID  string    `json:"tracking_id"`
	Status      string    `json:"status"`
	StatusDate  time.Time `json:"status_date"`
	TrackingURL string    `json:"tracking_url"`
	Timeline    []LogItem `json:"timeline"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
