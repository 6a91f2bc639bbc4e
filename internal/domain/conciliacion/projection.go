package conciliacion

// IsPending indica si el registro sigue abierto: no tiene fecha de salida
// interpretable. Tolera fechaSalida ausente, nil o ilegible.
func IsPending(r Record) bool {
	return GetDatePart(GetField(r, KeysFechaSalida...)) == ""
}

// IsCompleted indica si el registro cerró su ciclo: tiene tipo y fecha de salida.
// Un tipoSalida en cadena vacía cuenta como sin salida, igual que ausente.
func IsCompleted(r Record) bool {
	tipo, _ := Normalize(GetField(r, KeysTipoSalida...))
	return tipo != "" && !IsPending(r)
}

// HasEntryToday indica si el equipo ya tiene un ingreso abierto registrado hoy.
// today es la fecha calendario local (YYYY-MM-DD) suministrada por el caller,
// no UTC, para evitar corrimientos de día entre zonas horarias.
func HasEntryToday(records []Record, serial, today string) bool {
	for _, r := range records {
		if !SameNormalized(GetField(r, KeysSerial...), serial) {
			continue
		}
		if GetDatePart(GetField(r, KeysFechaIngreso...)) == today && IsPending(r) {
			return true
		}
	}
	return false
}

// HasExitToday indica si el equipo ya tiene una salida registrada hoy.
func HasExitToday(records []Record, serial, today string) bool {
	for _, r := range records {
		if !SameNormalized(GetField(r, KeysSerial...), serial) {
			continue
		}
		if GetDatePart(GetField(r, KeysFechaSalida...)) == today {
			return true
		}
	}
	return false
}
