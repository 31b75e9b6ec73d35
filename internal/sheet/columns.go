package sheet

import "strings"

// Canonical column keys produced by the client. Any subset may be absent
// from a given row; consumers must tolerate missing keys.
const (
	ColEmployee      = "employee"
	ColDeliveryType  = "delivery_type"
	ColAddress       = "address"
	ColTimestamp     = "timestamp"
	ColClientName    = "client_name"
	ColRecipientName = "recipient_name"
	ColPayment       = "payment"
	ColLatitude      = "latitude"
	ColLongitude     = "longitude"
)

// RecognizedColumns lists every canonical key the pipeline understands.
var RecognizedColumns = []string{
	ColEmployee,
	ColDeliveryType,
	ColAddress,
	ColTimestamp,
	ColClientName,
	ColRecipientName,
	ColPayment,
	ColLatitude,
	ColLongitude,
}

// headerAliases maps sheet header text (lowercased, trimmed) to canonical
// keys. The published sheet uses Spanish headers; English spellings are
// accepted as well so a renamed sheet keeps working. The client/recipient
// headers in the live sheet carry long parenthetical hints, so those are
// matched by prefix below.
var headerAliases = map[string]string{
	"empleado":           ColEmployee,
	"employee":           ColEmployee,
	"tipo":               ColDeliveryType,
	"delivery type":      ColDeliveryType,
	"dirección de envío": ColAddress,
	"direccion de envio": ColAddress,
	"address":            ColAddress,
	"fecha de llenar":    ColTimestamp,
	"timestamp":          ColTimestamp,
	"pago":               ColPayment,
	"payment":            ColPayment,
	"latitud":            ColLatitude,
	"latitude":           ColLatitude,
	"longitud":           ColLongitude,
	"longitude":          ColLongitude,
}

// prefixAliases handles headers whose sheet text includes free-form hints
// after the meaningful part, e.g. "Nombre del cliente (usuario/codigo)".
var prefixAliases = []struct {
	prefix string
	key    string
}{
	{"nombre del cliente", ColClientName},
	{"client name", ColClientName},
	{"nombre de quien recibe", ColRecipientName},
	{"recipient name", ColRecipientName},
}

// canonicalColumn resolves a raw header cell to a canonical key.
// Returns "" for unrecognized headers, which the client then skips.
func canonicalColumn(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if key, ok := headerAliases[h]; ok {
		return key
	}
	for _, a := range prefixAliases {
		if strings.HasPrefix(h, a.prefix) {
			return a.key
		}
	}
	return ""
}
