package conciliacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cesge/control-equipos/internal/domain/conciliacion"
)

func TestParseQRText_CarnetCompleto(t *testing.T) {
	p := conciliacion.ParseQRText("Documento: 123\nEquipo: ABC\nNombre: Ana")
	assert.Equal(t, "123", p.Documento)
	assert.Equal(t, "ABC", p.Serial)
	assert.Equal(t, "Ana", p.Nombre)
}

func TestParseQRText_EtiquetaSerial(t *testing.T) {
	p := conciliacion.ParseQRText("Documento: 456\nSerial: XYZ-99")
	assert.Equal(t, "456", p.Documento)
	assert.Equal(t, "XYZ-99", p.Serial)
	assert.Empty(t, p.Nombre)
}

func TestParseQRText_DocumentoConSufijoPipe(t *testing.T) {
	// Algunos carnés traen un sufijo delimitado por "|" después del documento.
	p := conciliacion.ParseQRText("Documento: 789|VIGENTE 2024\nEquipo: DEF")
	assert.Equal(t, "789", p.Documento)
	assert.Equal(t, "DEF", p.Serial)
}

func TestParseQRText_RegexInsensibleMayusculas(t *testing.T) {
	p := conciliacion.ParseQRText("documento: 111\nequipo: GHI")
	assert.Equal(t, "111", p.Documento)
	assert.Equal(t, "GHI", p.Serial)
}

// La pasada por líneas solo sobreescribe serial/nombre cuando encuentra un
// valor no vacío; documento conserva el resultado de regex salvo que una línea
// "Documento:" traiga algo. Esta precedencia asimétrica viene del lector
// original y se conserva tal cual: este test la fija.
func TestParseQRText_PrecedenciaLineaSobreRegex(t *testing.T) {
	// La regex toma la primera etiqueta del texto (Equipo); la pasada por
	// líneas recorre todas y la última con valor (Serial) gana.
	p := conciliacion.ParseQRText("Equipo: AAA\nSerial: BBB")
	assert.Equal(t, "BBB", p.Serial)
}

func TestParseQRText_EtiquetaVaciaNoPisaSerial(t *testing.T) {
	// Una línea "Equipo:" sin valor no debe borrar lo que capturó la regex en
	// otra línea.
	p := conciliacion.ParseQRText("Serial: KEEP\nEquipo:")
	assert.Equal(t, "KEEP", p.Serial)
}

func TestParseQRText_EntradaMalformada(t *testing.T) {
	for _, raw := range []string{"", "texto sin etiquetas", "|||", "\n\n\n"} {
		p := conciliacion.ParseQRText(raw)
		assert.Empty(t, p.Documento, "raw=%q", raw)
		assert.Empty(t, p.Serial, "raw=%q", raw)
		assert.Empty(t, p.Nombre, "raw=%q", raw)
	}
}

func TestParseQRText_NombreConEspacios(t *testing.T) {
	p := conciliacion.ParseQRText("Nombre:   Ana María Pérez  ")
	assert.Equal(t, "Ana María Pérez", p.Nombre)
}
