package commands

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

var ErrCreateCarrierShipmentCommandIsNotConstructed = errors.New(
	"CreateCarrierShipmentCommand must be created via NewCreateCarrierShipmentCommand constructor",
)

// CreateCarrierShipmentCommand represents a request to register a shipment
// with the external carrier and persist it under the carrier-assigned
// tracking number. Wraps the plain creation data with the carrier options.
type CreateCarrierShipmentCommand struct { //nolint:recvcheck //using for validation
	creation         CreateShipmentCommand
	confirmRetrieval bool
	companyInitiated bool
	remitNumber      string

	guard guard.ConstructorGuard
}

// NewCreateCarrierShipmentCommand creates a command for carrier-backed
// shipment registration. The creation part must itself be a constructed
// CreateShipmentCommand; remitNumber may be empty to let the gateway
// generate one.
func NewCreateCarrierShipmentCommand(
	creation CreateShipmentCommand,
	confirmRetrieval bool,
	companyInitiated bool,
	remitNumber string,
) (CreateCarrierShipmentCommand, error) {
	if err := creation.Validate(); err != nil {
		return CreateCarrierShipmentCommand{}, err
	}

	return CreateCarrierShipmentCommand{
		creation:         creation,
		confirmRetrieval: confirmRetrieval,
		companyInitiated: companyInitiated,
		remitNumber:      remitNumber,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierShipmentCommandIsNotConstructed)
}

// Creation returns the wrapped shipment creation data.
func (c CreateCarrierShipmentCommand) Creation() CreateShipmentCommand {
	return c.creation
}

// ConfirmRetrieval reports whether the carrier order is finalized immediately.
func (c CreateCarrierShipmentCommand) ConfirmRetrieval() bool {
	return c.confirmRetrieval
}

// CompanyInitiated reports whether the company origin override applies.
func (c CreateCarrierShipmentCommand) CompanyInitiated() bool {
	return c.companyInitiated
}

// RemitNumber returns the caller-supplied remit number, or empty.
func (c CreateCarrierShipmentCommand) RemitNumber() string {
	return c.remitNumber
}
