package oca

import "strings"

// e-Pak endpoint paths, relative to BaseURL + TrackingPath. Only shipment
// creation is wired today; the remaining paths document the vendor surface
// for future operations (tracking, rating, cancellation, labels).
const (
	EndpointCreateShipment = "Oep_TrackEPak.asmx/IngresoORMultiplesRetiros"
	EndpointTrackPackage   = "Oep_TrackEPak.asmx/Tracking_Pieza"
	EndpointRateShipping   = "Oep_TrackEPak.asmx/Tarifar_Envio_Corporativo"
	EndpointCancelOrder    = "Oep_TrackEPak.asmx/AnularOrdenGenerada"
	EndpointShipmentStatus = "Oep_TrackEPak.asmx/GetEnvioEstadoActual"
	EndpointListShipments  = "Oep_TrackEPak.asmx/List_Envios"
)

// Known e-Pak environments. TrackingPath selects between them; BaseURL is the
// same host for both.
const (
	TrackingPathTest       = "/ePak_Tracking_TEST/"
	TrackingPathProduction = "/ePak_tracking/"
)

// endpointURL joins the configured host, environment path, and endpoint path.
func endpointURL(baseURL, trackingPath, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/" +
		strings.Trim(trackingPath, "/") + "/" + endpoint
}
