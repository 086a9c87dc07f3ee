package shipment

import (
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// ErrPackageIsNotConstructed is returned when a Package instance was not
// created through NewPackage or RestorePackage.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// PackageType classifies the physical contents of a package.
type PackageType string

const (
	// PackageTypeParcel is the default classification.
	PackageTypeParcel PackageType = "PARCEL"
	// PackageTypeDocument is used for envelope-sized document shipments.
	PackageTypeDocument PackageType = "DOCUMENT"
	// PackageTypeFragile marks contents requiring careful handling.
	PackageTypeFragile PackageType = "FRAGILE"
)

// Validate checks the classification against the known set.
func (t PackageType) Validate() error {
	switch t {
	case PackageTypeParcel, PackageTypeDocument, PackageTypeFragile:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("%q is not a valid package type", string(t)))
	}
}

// Dimensions holds the optional physical measurements of a package, in
// centimeters.
type Dimensions struct {
	Height float64
	Width  float64
	Length float64
}

// Validate checks that all measurements are positive.
func (d Dimensions) Validate() error {
	if d.Height <= 0 || d.Width <= 0 || d.Length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%gx%gx%g has a non-positive side", d.Height, d.Width, d.Length))
	}
	return nil
}

// Package is a physical piece belonging to exactly one Shipment. The parent
// shipment id is fixed at creation and never changes; deleting the shipment
// cascades to its packages.
type Package struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	weight     float64
	dimensions *Dimensions
	pkgType    PackageType

	isConstructed bool
}

// NewPackage creates a validated package owned by the given shipment.
// Weight must be positive; dimensions are optional; an empty package type
// defaults to PackageTypeParcel.
func NewPackage(
	id kernel.UUID,
	shipmentID kernel.UUID,
	weight float64,
	dimensions *Dimensions,
	pkgType PackageType,
) (*Package, error) {
	if pkgType == "" {
		pkgType = PackageTypeParcel
	}

	p := &Package{
		dimensions:    dimensions,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setShipmentID(shipmentID),
		p.setWeight(weight),
		p.setType(pkgType),
	); err != nil {
		return nil, err
	}

	if dimensions != nil {
		if err := dimensions.Validate(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// RestorePackage reconstructs a package from persistence without re-running
// creation-time defaulting.
func RestorePackage(
	id kernel.UUID,
	shipmentID kernel.UUID,
	weight float64,
	dimensions *Dimensions,
	pkgType PackageType,
) (*Package, error) {
	return NewPackage(id, shipmentID, weight, dimensions, pkgType)
}

// Validate ensures the Package was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// ShipmentID returns the owning shipment's identifier.
func (p *Package) ShipmentID() kernel.UUID {
	return p.shipmentID
}

// Weight returns the package weight in kilograms.
func (p *Package) Weight() float64 {
	return p.weight
}

// Dimensions returns the measurements, or nil when not recorded.
func (p *Package) Dimensions() *Dimensions {
	return p.dimensions
}

// Type returns the package classification.
func (p *Package) Type() PackageType {
	return p.pkgType
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	p.shipmentID = shipmentID
	return nil
}

func (p *Package) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Package) setType(pkgType PackageType) error {
	if err := pkgType.Validate(); err != nil {
		return err
	}
	p.pkgType = pkgType
	return nil
}
