package shipment

import (
	"fmt"
	"net/url"
	"strings"

	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// TrackingID is the externally visible identifier customers use to look up
// shipment status. It is assigned exactly once, at creation: either generated
// locally or adopted from a successful carrier response. It never changes
// afterwards.
type TrackingID struct {
	value string
}

// NewTrackingID generates a local tracking code of the form "TRK-XXXXXXXX".
// Used for shipments created directly, without a carrier order.
func NewTrackingID() TrackingID {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return TrackingID{value: "TRK-" + suffix}
}

// TrackingIDFromString wraps an externally supplied tracking code, typically
// the carrier-assigned shipment number.
func TrackingIDFromString(s string) (TrackingID, error) {
	if s == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingID")
	}
	return TrackingID{value: s}, nil
}

// String returns the tracking code.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual reports whether two tracking codes are the same.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate returns an error for the zero value.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError(
			"tracking ID must be created via NewTrackingID or TrackingIDFromString")
	}
	return nil
}

// TrackingURL builds the public tracking page URL for a shipment. The result
// is what the QR code generator encodes on printed labels.
func TrackingURL(baseURL string, t TrackingID) string {
	return fmt.Sprintf("%s/tracking?tracking_id=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(t.String()))
}
