package oca

import (
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// Defaults applied when the caller leaves optional mapping inputs empty.
// These are the values the carrier's endpoint expects for absent data.
const (
	defaultObservations    = "Sin observaciones"
	defaultCostCenter      = "0"
	defaultTimeSlotID      = "1"
	defaultAdmissionCenter = "0"
	defaultRemitCount      = 1
	defaultPackageCount    = 1
)

// RequestMapper translates a domain shipment into the carrier's nested
// request schema. Account identification comes from the static configuration,
// never from the caller; dates are rendered at mapping time.
type RequestMapper struct {
	config Config
	now    func() time.Time
}

// NewRequestMapper creates a mapper over the given carrier configuration.
func NewRequestMapper(config Config) *RequestMapper {
	return &RequestMapper{
		config: config,
		now:    time.Now,
	}
}

// Map builds the carrier request for one shipment: one header, one origin
// block, one shipment item with one recipient and one package item per
// domain package.
//
// When opts.CompanyInitiated is set, the caller's origin address is discarded
// and the configured company origin takes its place. This is a hard business
// rule for company-dispatched orders, not a defaulting step.
func (m *RequestMapper) Map(s *shipment.Shipment, opts ports.CarrierCreateOptions) (Request, error) {
	if err := s.Validate(); err != nil {
		return Request{}, err
	}
	if len(s.Packages()) == 0 {
		return Request{}, errs.NewValueIsRequiredError("packages")
	}

	origin := m.mapOrigin(s, opts.CompanyInitiated)
	origin.Date = m.now().Format("20060102")
	origin.Shipments = []ShipmentItem{m.mapShipmentItem(s, opts.RemitNumber)}

	return Request{
		Header: Header{
			Version:       ProtocolVersion,
			AccountNumber: m.config.AccountNumber,
		},
		Origins: []Origin{origin},
	}, nil
}

func (m *RequestMapper) mapOrigin(s *shipment.Shipment, companyInitiated bool) Origin {
	if companyInitiated {
		co := m.config.CompanyOrigin
		return Origin{
			Street:            co.Street,
			Number:            co.Number,
			Floor:             co.Floor,
			Apartment:         co.Apartment,
			ZipCode:           co.ZipCode,
			City:              co.City,
			State:             co.State,
			Contact:           co.Contact,
			Email:             co.Email,
			Observations:      defaultObservations,
			CostCenter:        orDefault(co.CostCenter, defaultCostCenter),
			TimeSlotID:        defaultTimeSlotID,
			AdmissionCenterID: defaultAdmissionCenter,
		}
	}

	addr := s.Origin()
	sender := s.Sender()
	return Origin{
		Street:            addr.Street(),
		Number:            addr.Number(),
		Floor:             addr.Floor(),
		Apartment:         addr.Apartment(),
		ZipCode:           addr.ZipCode(),
		City:              addr.City(),
		State:             addr.State(),
		Contact:           sender.Name(),
		Email:             sender.Email(),
		Requester:         sender.Name(),
		Observations:      defaultObservations,
		CostCenter:        defaultCostCenter,
		TimeSlotID:        defaultTimeSlotID,
		AdmissionCenterID: defaultAdmissionCenter,
	}
}

func (m *RequestMapper) mapShipmentItem(s *shipment.Shipment, remitNumber string) ShipmentItem {
	if remitNumber == "" {
		remitNumber = "REM-" + strings.ToUpper(uuid.NewString()[:8])
	}

	items := make([]PackageItem, 0, len(s.Packages()))
	for _, pkg := range s.Packages() {
		item := PackageItem{
			Weight: pkg.Weight(),
			Value:  0,
			Count:  defaultPackageCount,
		}
		if dims := pkg.Dimensions(); dims != nil {
			item.Height = dims.Height
			item.Width = dims.Width
			item.Length = dims.Length
		}
		items = append(items, item)
	}

	return ShipmentItem{
		OperativeID: m.config.OperativeID,
		RemitNumber: remitNumber,
		RemitCount:  defaultRemitCount,
		Recipient:   m.mapRecipient(s),
		Packages:    items,
	}
}

func (m *RequestMapper) mapRecipient(s *shipment.Shipment) Recipient {
	first, last := splitName(s.Receiver().Name())
	addr := s.Destination()

	return Recipient{
		LastName:          last,
		FirstName:         first,
		Street:            addr.Street(),
		Number:            addr.Number(),
		Floor:             addr.Floor(),
		Apartment:         addr.Apartment(),
		City:              addr.City(),
		State:             addr.State(),
		ZipCode:           addr.ZipCode(),
		Phone:             s.Receiver().Phone(),
		Email:             s.Receiver().Email(),
		AdmissionCenterID: defaultAdmissionCenter,
		CellPhone:         s.Receiver().Phone(),
	}
}

// splitName divides a full name into the first/last pair the vendor schema
// requires. A single-word name becomes the first name with an empty last
// name.
func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
