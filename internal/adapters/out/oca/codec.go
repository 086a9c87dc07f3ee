package oca

import (
	"fmt"
	"regexp"
	"strings"
)

// Codec serializes carrier requests and interprets carrier responses. The
// interface isolates the vendor's wire quirks so a conforming XML/SOAP
// implementation can replace LegacyCodec without touching the mapper or the
// client.
type Codec interface {
	// Encode renders the request as the vendor's XML dialect.
	Encode(req Request) ([]byte, error)

	// Decode interprets the raw response body. Returns a VendorError when the
	// carrier reported a business failure and a ParseError when the body
	// matched no known pattern.
	Decode(raw []byte) (Response, error)
}

// trackingNumberPattern locates the carrier-assigned shipment number in the
// response. The body is not guaranteed to be well-formed XML, so the marker
// is matched as text.
var trackingNumberPattern = regexp.MustCompile(`<NumeroEnvio>(.*?)</NumeroEnvio>`)

// LegacyCodec reproduces the wire behavior the carrier's legacy endpoint
// actually accepts: attribute-based XML with an iso-8859-1 prolog on the way
// out, and substring heuristics on the way back. The response side is crude
// on purpose: the endpoint returns fragments without a guaranteed root
// element, so a real XML parser cannot be trusted here. Keep the fragility
// contained in this type.
type LegacyCodec struct{}

// NewLegacyCodec creates the codec for the carrier's legacy endpoint.
func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{}
}

// Encode renders the fixed vendor nesting: ROWS > cabecera; origenes >
// origen > envios > envio > destinatario + paquetes. All free-text attribute
// values are XML-escaped before emission.
func (c *LegacyCodec) Encode(req Request) ([]byte, error) {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="iso-8859-1" standalone="yes"?>` + "\n")
	b.WriteString("<ROWS>\n")
	fmt.Fprintf(&b, "  <cabecera ver=\"%s\" nrocuenta=\"%s\" />\n",
		escapeXML(req.Header.Version), escapeXML(req.Header.AccountNumber))

	b.WriteString("  <origenes>\n")
	for _, origin := range req.Origins {
		c.encodeOrigin(&b, origin)
	}
	b.WriteString("  </origenes>\n")
	b.WriteString("</ROWS>")

	return []byte(b.String()), nil
}

func (c *LegacyCodec) encodeOrigin(b *strings.Builder, origin Origin) {
	fmt.Fprintf(b, `    <origen calle="%s" nro="%s" piso="%s" depto="%s" cp="%s" localidad="%s" `+
		`provincia="%s" contacto="%s" email="%s" solicitante="%s" observaciones="%s" `+
		`centrocosto="%s" idfranjahoraria="%s" idcentroimposicionorigen="%s" fecha="%s">`+"\n",
		escapeXML(origin.Street), escapeXML(origin.Number),
		escapeXML(origin.Floor), escapeXML(origin.Apartment),
		escapeXML(origin.ZipCode), escapeXML(origin.City),
		escapeXML(origin.State), escapeXML(origin.Contact),
		escapeXML(origin.Email), escapeXML(origin.Requester),
		escapeXML(origin.Observations), escapeXML(origin.CostCenter),
		escapeXML(origin.TimeSlotID), escapeXML(origin.AdmissionCenterID),
		escapeXML(origin.Date))

	b.WriteString("      <envios>\n")
	for _, item := range origin.Shipments {
		c.encodeShipmentItem(b, item)
	}
	b.WriteString("      </envios>\n")
	b.WriteString("    </origen>\n")
}

func (c *LegacyCodec) encodeShipmentItem(b *strings.Builder, item ShipmentItem) {
	fmt.Fprintf(b, "        <envio idoperativa=\"%s\" nroremito=\"%s\" cantidadremitos=\"%d\">\n",
		escapeXML(item.OperativeID), escapeXML(item.RemitNumber), item.RemitCount)

	dest := item.Recipient
	fmt.Fprintf(b, `          <destinatario apellido="%s" nombre="%s" calle="%s" nro="%s" piso="%s" `+
		`depto="%s" localidad="%s" provincia="%s" cp="%s" telefono="%s" email="%s" idci="%s" `+
		`celular="%s" observaciones="%s" />`+"\n",
		escapeXML(dest.LastName), escapeXML(dest.FirstName),
		escapeXML(dest.Street), escapeXML(dest.Number),
		escapeXML(dest.Floor), escapeXML(dest.Apartment),
		escapeXML(dest.City), escapeXML(dest.State),
		escapeXML(dest.ZipCode), escapeXML(dest.Phone),
		escapeXML(dest.Email), escapeXML(dest.AdmissionCenterID),
		escapeXML(dest.CellPhone), escapeXML(dest.Observations))

	b.WriteString("          <paquetes>\n")
	for _, pkg := range item.Packages {
		fmt.Fprintf(b, `            <paquete alto="%g" ancho="%g" largo="%g" peso="%g" `+
			`valor="%g" cant="%d" />`+"\n",
			pkg.Height, pkg.Width, pkg.Length, pkg.Weight, pkg.Value, pkg.Count)
	}
	b.WriteString("          </paquetes>\n")
	b.WriteString("        </envio>\n")
}

// Decode applies the legacy success/failure heuristic:
//   - a body containing the literal "Error" is a vendor-reported failure and
//     the raw text is the error message;
//   - otherwise a <NumeroEnvio> marker yields the carrier tracking number;
//   - anything else is a parse failure.
func (c *LegacyCodec) Decode(raw []byte) (Response, error) {
	text := string(raw)

	if text == "" || strings.Contains(text, "Error") {
		return Response{}, &VendorError{Message: text}
	}

	if match := trackingNumberPattern.FindStringSubmatch(text); match != nil && match[1] != "" {
		return Response{TrackingNumber: match[1], Raw: text}, nil
	}

	return Response{}, &ParseError{Raw: text}
}

// escapeXML escapes the five characters the vendor's schema cannot carry in
// attribute values. The ampersand must go first.
func escapeXML(text string) string {
	if text == "" {
		return ""
	}

	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(text)
}
