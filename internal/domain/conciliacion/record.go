// Package conciliacion implementa el núcleo de conciliación de movimientos:
// dado el snapshot actual de registros de ingreso/salida y un evento de escaneo QR,
// decide si se crea un ingreso, se cierra una salida o se rechaza la operación.
//
// El paquete es puro: no hace I/O, no muta sus entradas y no lee el reloj del
// sistema (el caller inyecta Clock). El snapshot llega como mapas crudos porque
// la fuente de datos es externa y mezcla convenciones de nombres (camelCase y
// snake_case); el normalizador de campos absorbe esa heterogeneidad.
package conciliacion

// Record es un registro de movimiento tal como llega de la fuente externa,
// sin validar. Los valores pueden ser string, número, time.Time o nil.
type Record map[string]any

// Tipos de ingreso/salida.
const (
	TipoOcasional  = "Ocasional"
	TipoPermanente = "Permanente"
)

// Listas ordenadas de claves candidatas por campo. La fuente mezcla camelCase
// y snake_case en el mismo dataset; centralizar las listas aquí hace visible
// cualquier deriva de esquema en un solo lugar.
var (
	KeysID           = []string{"id", "ID"}
	KeysDocumento    = []string{"documentoPersona", "documento_persona", "documento"}
	KeysSerial       = []string{"serialEquipo", "serial_equipo", "serial"}
	KeysTipoIngreso  = []string{"tipoIngreso", "tipo_ingreso", "ingreso"}
	KeysFechaIngreso = []string{"fechaIngreso", "fecha_ingreso"}
	KeysTipoSalida   = []string{"tipoSalida", "tipo_salida", "salida"}
	KeysFechaSalida  = []string{"fechaSalida", "fecha_salida"}
)
