package conciliacion

import (
	"regexp"
	"strings"
)

// QRPayload campos extraídos del texto de un código QR. "" significa ausente.
type QRPayload struct {
	Documento string
	Serial    string
	Nombre    string
}

// Pasada por regex (insensible a mayúsculas). El documento corta en "|" porque
// algunos carnés traen un sufijo delimitado después del número.
var (
	qrDocumentoRe = regexp.MustCompile(`(?i)Documento:\s*([^|\n]+)`)
	qrSerialRe    = regexp.MustCompile(`(?i)(?:Equipo|Serial):\s*([^\n]+)`)
	qrNombreRe    = regexp.MustCompile(`(?i)Nombre:\s*([^\n]+)`)
)

// ParseQRText extrae documento, serial y nombre del texto crudo de un QR.
//
// Estrategia en dos pasadas: primero regex por campo sobre el texto completo,
// después un recorrido línea a línea partiendo por las etiquetas literales.
// La segunda pasada solo sobreescribe serial y nombre cuando encuentra un valor
// no vacío; para documento sobreescribe siempre que la línea tenga "Documento:"
// con algo detrás. Esa asimetría viene del lector original y el comportamiento
// está cubierto por tests, así que se conserva tal cual.
//
// Texto malformado o vacío devuelve todos los campos vacíos, nunca entra en pánico.
func ParseQRText(raw string) QRPayload {
	var p QRPayload
	if raw == "" {
		return p
	}

	if m := qrDocumentoRe.FindStringSubmatch(raw); m != nil {
		p.Documento = strings.TrimSpace(m[1])
	}
	if m := qrSerialRe.FindStringSubmatch(raw); m != nil {
		p.Serial = strings.TrimSpace(m[1])
	}
	if m := qrNombreRe.FindStringSubmatch(raw); m != nil {
		p.Nombre = strings.TrimSpace(m[1])
	}

	// Fallback por líneas (etiquetas literales, sensibles a mayúsculas).
	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, "Documento:") {
			after := strings.SplitN(line, "Documento:", 2)[1]
			if after != "" {
				p.Documento = strings.TrimSpace(strings.SplitN(after, "|", 2)[0])
			}
		}
		if strings.Contains(line, "Equipo:") {
			if v := strings.TrimSpace(strings.SplitN(line, "Equipo:", 2)[1]); v != "" {
				p.Serial = v
			}
		}
		if strings.Contains(line, "Serial:") {
			if v := strings.TrimSpace(strings.SplitN(line, "Serial:", 2)[1]); v != "" {
				p.Serial = v
			}
		}
		if strings.Contains(line, "Nombre:") {
			if v := strings.TrimSpace(strings.SplitN(line, "Nombre:", 2)[1]); v != "" {
				p.Nombre = v
			}
		}
	}

	return p
}
