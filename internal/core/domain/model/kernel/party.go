package kernel

import (
	"errors"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when validating a Party that was not
// created via NewParty.
var ErrPartyIsNotConstructed = errs.NewValueIsRequiredError(
	"party must be created via NewParty constructor")

// Party is an identity snapshot of a sender or receiver: name, national ID,
// phone, and email, captured at shipment creation time. It is deliberately
// not a reference to a user record, so later profile changes never rewrite
// shipment history.
type Party struct { //nolint:recvcheck //using for validation
	name       string
	nationalID string
	phone      string
	email      string

	guard guard.ConstructorGuard
}

// NewParty creates a validated identity snapshot. Name and national ID are
// required; phone and email are optional.
func NewParty(name, nationalID, phone, email string) (Party, error) {
	p := Party{
		phone: phone,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setNationalID(nationalID),
	); err != nil {
		return Party{}, err
	}

	return p, nil
}

// Validate checks that the Party was created through NewParty.
func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// Name returns the full name.
func (p Party) Name() string {
	return p.name
}

// NationalID returns the national identity document number.
func (p Party) NationalID() string {
	return p.nationalID
}

// Phone returns the contact phone, or "" when not provided.
func (p Party) Phone() string {
	return p.phone
}

// Email returns the contact email, or "" when not provided.
func (p Party) Email() string {
	return p.email
}

func (p *Party) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Party) setNationalID(nationalID string) error {
	if nationalID == "" {
		return errs.NewValueIsRequiredError("nationalID")
	}
	p.nationalID = nationalID
	return nil
}
