package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	TrackingBaseURL     string
	StaleThreshold      string
	OcaBaseURL          string
	OcaTrackingPath     string
	OcaUsername         string
	OcaPassword         string
	OcaAccountNumber    string
	OcaOperativeID      string
	OcaOriginStreet     string
	OcaOriginNumber     string
	OcaOriginFloor      string
	OcaOriginApartment  string
	OcaOriginZipCode    string
	OcaOriginCity       string
	OcaOriginState      string
	OcaOriginEmail      string
	OcaOriginContact    string
	OcaOriginCostCenter string
}
