// Package oca integrates with the OCA e-Pak legacy web service. It implements
// the ports.CarrierGateway contract in three collaborating pieces: a request
// mapper that shapes domain data into the vendor's nested schema, a wire
// codec that renders the attribute-heavy XML dialect and interprets the
// semi-structured text responses, and an HTTP client that speaks the
// form-encoded transport.
package oca

// ProtocolVersion is the e-Pak schema version declared in every request
// header.
const ProtocolVersion = "2.0"

// Request is the root transfer object submitted to the carrier. It is not
// persisted; it exists only to be serialized by the wire codec. The vendor
// schema requires exactly one header and one or more origin blocks.
type Request struct {
	Header  Header
	Origins []Origin
}

// Header carries the account identification attributes of the request
// (vendor attributes "ver" and "nrocuenta").
type Header struct {
	Version       string
	AccountNumber string
}

// Origin is a pickup address block. Each origin holds one or more shipment
// items collected from that address on the given date.
type Origin struct {
	Street            string
	Number            string
	Floor             string
	Apartment         string
	ZipCode           string
	City              string
	State             string
	Contact           string
	Email             string
	Requester         string
	Observations      string
	CostCenter        string
	TimeSlotID        string
	AdmissionCenterID string
	// Date is rendered in YYYYMMDD form.
	Date      string
	Shipments []ShipmentItem
}

// ShipmentItem is one carrier order within an origin block: exactly one
// recipient and one or more package items.
type ShipmentItem struct {
	OperativeID string
	RemitNumber string
	RemitCount  int
	Recipient   Recipient
	Packages    []PackageItem
}

// Recipient is the delivery side of a shipment item.
type Recipient struct {
	LastName          string
	FirstName         string
	Street            string
	Number            string
	Floor             string
	Apartment         string
	City              string
	State             string
	ZipCode           string
	Phone             string
	Email             string
	AdmissionCenterID string
	CellPhone         string
	Observations      string
}

// PackageItem describes one physical piece. Measurements are centimeters,
// weight kilograms, value in the carrier's account currency.
type PackageItem struct {
	Height float64
	Width  float64
	Length float64
	Weight float64
	Value  float64
	Count  int
}

// Response is the parsed outcome of a carrier call: the carrier-assigned
// shipment number plus the raw body kept for diagnostics.
type Response struct {
	TrackingNumber string
	Raw            string
}
