package conciliacion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cesge/control-equipos/internal/domain/conciliacion"
)

func TestIsPending_SinFechaSalida(t *testing.T) {
	cases := []struct {
		name string
		r    conciliacion.Record
		want bool
	}{
		{"fechaSalida ausente", conciliacion.Record{"serialEquipo": "A"}, true},
		{"fechaSalida nil", conciliacion.Record{"fechaSalida": nil}, true},
		{"fechaSalida vacía", conciliacion.Record{"fechaSalida": ""}, true},
		{"fechaSalida ilegible", conciliacion.Record{"fechaSalida": "???"}, true},
		{"fechaSalida presente camelCase", conciliacion.Record{"fechaSalida": "2024-05-01 10:00:00"}, false},
		{"fechaSalida presente snake_case", conciliacion.Record{"fecha_salida": "2024-05-01 10:00:00"}, false},
		{"fechaSalida como time.Time", conciliacion.Record{"fecha_salida": time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, conciliacion.IsPending(tc.r))
		})
	}
}

func TestIsCompleted_RequiereTipoYFecha(t *testing.T) {
	completo := conciliacion.Record{"tipoSalida": "Permanente", "fechaSalida": "2024-05-01 10:00:00"}
	soloFecha := conciliacion.Record{"fechaSalida": "2024-05-01 10:00:00"}
	tipoVacio := conciliacion.Record{"tipoSalida": "", "fechaSalida": "2024-05-01 10:00:00"}
	assert.True(t, conciliacion.IsCompleted(completo))
	assert.False(t, conciliacion.IsCompleted(soloFecha), "sin tipoSalida no cuenta como completado")
	assert.False(t, conciliacion.IsCompleted(tipoVacio), "tipoSalida vacío equivale a ausente")
}

func TestHasEntryToday_IngresoAbiertoHoy(t *testing.T) {
	records := []conciliacion.Record{
		{"serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00", "fechaSalida": nil},
	}
	assert.True(t, conciliacion.HasEntryToday(records, "ABC", "2024-05-01"))
	assert.False(t, conciliacion.HasEntryToday(records, "ABC", "2024-05-02"), "otro día no cuenta")
	assert.False(t, conciliacion.HasEntryToday(records, "OTRO", "2024-05-01"), "otro serial no cuenta")
}

func TestHasEntryToday_IngresoCerradoNoCuenta(t *testing.T) {
	records := []conciliacion.Record{
		{"serialEquipo": "ABC", "fechaIngreso": "2024-05-01 08:00:00", "fechaSalida": "2024-05-01 17:00:00"},
	}
	assert.False(t, conciliacion.HasEntryToday(records, "ABC", "2024-05-01"))
}

func TestHasExitToday(t *testing.T) {
	records := []conciliacion.Record{
		{"serial_equipo": "ABC", "fecha_ingreso": "2024-05-01 08:00:00", "fecha_salida": "2024-05-01 17:00:00"},
	}
	assert.True(t, conciliacion.HasExitToday(records, "ABC", "2024-05-01"))
	assert.False(t, conciliacion.HasExitToday(records, "ABC", "2024-05-02"))
}

func TestHasEntryToday_SerialConEspacios(t *testing.T) {
	// La comparación de seriales pasa por Normalize: espacios alrededor no rompen el match.
	records := []conciliacion.Record{
		{"serialEquipo": " ABC ", "fechaIngreso": "2024-05-01 08:00:00"},
	}
	assert.True(t, conciliacion.HasEntryToday(records, "ABC", "2024-05-01"))
}
