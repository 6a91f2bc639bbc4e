package conciliacion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePartRe busca una fecha literal YYYY-MM-DD dentro de un string. Extraerla
// por regex evita construir un time.Time sensible a zona horaria cuando el
// valor ya trae la fecha calendario escrita.
var datePartRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// dateLayouts son los formatos aceptados por ToDate, tras sustituir el primer
// espacio por "T" (acepta tanto "YYYY-MM-DD HH:mm[:ss]" como ISO-8601).
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// GetField devuelve el primer valor no nulo entre las claves candidatas.
// Tolera datasets que mezclan camelCase y snake_case en un mismo registro.
func GetField(r Record, keys ...string) any {
	if r == nil {
		return nil
	}
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Normalize convierte un valor a string recortado para comparaciones de igualdad.
// nil produce ("", false): dos valores ausentes se consideran iguales entre sí,
// pero distintos de cualquier valor presente (incluida la cadena vacía).
func Normalize(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s), true
	}
	return strings.TrimSpace(fmt.Sprint(v)), true
}

// SameNormalized compara dos valores tras normalizar. Ausente == ausente.
func SameNormalized(a, b any) bool {
	sa, oka := Normalize(a)
	sb, okb := Normalize(b)
	return oka == okb && sa == sb
}

// ToDate intenta interpretar el valor como fecha/hora. Acepta time.Time,
// "YYYY-MM-DD HH:mm[:ss]" e ISO-8601; los strings sin zona se interpretan en
// hora local. Nunca entra en pánico: (zero, false) si no se puede interpretar.
func ToDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		s = strings.Replace(s, " ", "T", 1)
		for _, layout := range dateLayouts {
			if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// GetDatePart extrae la fecha calendario (YYYY-MM-DD) de un valor. Primero
// busca el literal por regex (sin desplazamiento de zona horaria); solo si no
// hay literal cae a ToDate. "" significa sin fecha.
func GetDatePart(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		if m := datePartRe.FindString(s); m != "" {
			return m
		}
	}
	if t, ok := ToDate(v); ok {
		return t.Format("2006-01-02")
	}
	return ""
}

// recordID devuelve el id del registro como entero para desempates.
// Ids ausentes o no numéricos cuentan como 0.
func recordID(r Record) int64 {
	switch v := GetField(r, KeysID...).(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
