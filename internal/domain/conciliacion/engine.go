package conciliacion

import "time"

// Mode modo del evento de escaneo.
type Mode string

const (
	ModeIngreso Mode = "ingreso"
	ModeSalida  Mode = "salida"
)

// Outcome resultado terminal de evaluar un escaneo. El motor no reintenta:
// el caller decide la mensajería al usuario y si repite la llamada de red.
type Outcome string

const (
	// OutcomeInvalidPayload el QR no trae documento y serial; hay que reescanear.
	OutcomeInvalidPayload Outcome = "INVALID_PAYLOAD"
	// OutcomeCreateEntry debe crearse un nuevo registro de ingreso (Decision.Create).
	OutcomeCreateEntry Outcome = "CREATE_ENTRY"
	// OutcomeAlreadyPending el equipo ya registró ingreso hoy y la salida sigue pendiente.
	OutcomeAlreadyPending Outcome = "ALREADY_PENDING"
	// OutcomeAlreadyCompleted ingreso y salida de hoy ya están registrados.
	OutcomeAlreadyCompleted Outcome = "ALREADY_COMPLETED"
	// OutcomeCloseExit debe cerrarse el movimiento Decision.TargetID con Decision.Update.
	OutcomeCloseExit Outcome = "CLOSE_EXIT"
	// OutcomeNoPendingMatch salida sin ingreso pendiente que cerrar.
	OutcomeNoPendingMatch Outcome = "NO_PENDING_MATCH"
)

// Clock reloj inyectable. Today es la fecha calendario local (YYYY-MM-DD),
// no UTC, para que "hoy" coincida con el día del puesto de vigilancia.
type Clock interface {
	Now() time.Time
	Today() string
}

// ScanEvent evento de escaneo a conciliar contra el snapshot de registros.
type ScanEvent struct {
	Mode               Mode
	Payload            QRPayload
	CentroFormacion    string
	DocumentoVigilante string
	Observaciones      string
}

// Decision resultado de la conciliación. El motor no persiste nada: el caller
// es responsable de aplicar Create/Update y de refrescar su snapshot.
type Decision struct {
	Outcome  Outcome
	TargetID any    // id del movimiento a cerrar (solo CLOSE_EXIT)
	Create   Record // payload del nuevo ingreso (solo CREATE_ENTRY)
	Update   Record // payload de cierre (solo CLOSE_EXIT)
}

// Evaluate concilia un evento de escaneo contra el snapshot actual.
// Es una función pura sobre sus argumentos: segura para llamadas concurrentes,
// pero dos salidas compitiendo sobre el mismo snapshot desactualizado pueden
// elegir el mismo registro; el caller debe serializar persistir-y-refrescar
// por serial de equipo.
func Evaluate(records []Record, scan ScanEvent, clock Clock) Decision {
	if scan.Payload.Documento == "" || scan.Payload.Serial == "" {
		return Decision{Outcome: OutcomeInvalidPayload}
	}

	switch scan.Mode {
	case ModeIngreso:
		return evaluateIngreso(records, scan, clock)
	case ModeSalida:
		return evaluateSalida(records, scan, clock)
	default:
		return Decision{Outcome: OutcomeInvalidPayload}
	}
}

func evaluateIngreso(records []Record, scan ScanEvent, clock Clock) Decision {
	serial := scan.Payload.Serial
	today := clock.Today()

	entryToday := HasEntryToday(records, serial, today)
	exitToday := HasExitToday(records, serial, today)

	if entryToday && !exitToday {
		return Decision{Outcome: OutcomeAlreadyPending}
	}
	if exitToday {
		return Decision{Outcome: OutcomeAlreadyCompleted}
	}

	now := clock.Now().Format("2006-01-02 15:04:05")
	return Decision{
		Outcome: OutcomeCreateEntry,
		Create: Record{
			"documentoPersona":   scan.Payload.Documento,
			"serialEquipo":       serial,
			"tipoIngreso":        TipoPermanente,
			"fechaIngreso":       now,
			"tipoSalida":         "",
			"fechaSalida":        nil,
			"centroFormacion":    scan.CentroFormacion,
			"documentoVigilante": scan.DocumentoVigilante,
			"observaciones":      scan.Observaciones,
		},
	}
}

func evaluateSalida(records []Record, scan ScanEvent, clock Clock) Decision {
	match := FindPendingByDocAndSerial(records, scan.Payload.Documento, scan.Payload.Serial)
	if match == nil {
		return Decision{Outcome: OutcomeNoPendingMatch}
	}

	now := clock.Now().Format("2006-01-02 15:04:05")
	return Decision{
		Outcome:  OutcomeCloseExit,
		TargetID: GetField(match, KeysID...),
		// fechaSalida se escribe bajo ambas convenciones a propósito: los
		// consumidores aguas abajo leen una u otra según su versión.
		Update: Record{
			"tipoSalida":   TipoPermanente,
			"fechaSalida":  now,
			"fecha_salida": now,
		},
	}
}
