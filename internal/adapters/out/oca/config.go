package oca

import (
	"errors"

	"shiptrack/internal/pkg/errs"
)

// CompanyOrigin is the fixed pickup address used for company-initiated
// shipments. When the origin override applies, this block replaces the
// caller-supplied origin wholesale.
type CompanyOrigin struct {
	Street     string
	Number     string
	Floor      string
	Apartment  string
	ZipCode    string
	City       string
	State      string
	Email      string
	Contact    string
	CostCenter string
}

// Config is the immutable carrier account configuration, constructed once at
// startup and passed into the client explicitly. Nothing in this package
// reads the environment or keeps global state.
type Config struct {
	// BaseURL is the carrier web service host, e.g.
	// "http://webservice.oca.com.ar".
	BaseURL string
	// TrackingPath selects the e-Pak environment, e.g. "/ePak_tracking/".
	TrackingPath string
	// Username and Password authenticate the form submission.
	Username string
	Password string
	// AccountNumber goes into the request header.
	AccountNumber string
	// OperativeID is the default operation/service code for shipment items.
	OperativeID string
	// CompanyOrigin is the fixed origin block for company-initiated orders.
	CompanyOrigin CompanyOrigin
}

// Validate checks that the account fields required on every call are present.
func (c Config) Validate() error {
	var err error
	if c.BaseURL == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("baseURL"))
	}
	if c.Username == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("username"))
	}
	if c.Password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if c.AccountNumber == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("accountNumber"))
	}
	if c.OperativeID == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("operativeID"))
	}
	return err
}
