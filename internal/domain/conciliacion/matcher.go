package conciliacion

import "sort"

// FindPendingByDocAndSerial busca el movimiento pendiente que debe cerrar una
// salida. Primera etapa: registros pendientes cuyo serial y documento coinciden
// con lo escaneado. Si no hay ninguno, cae a FindPendingBySerial: una salida
// escaneada debe poder cerrar el ingreso aunque el documento guardado difiera
// del escaneado, siempre que el serial del equipo sea inequívoco y esté pendiente.
// Devuelve nil si ninguna etapa encuentra candidato.
func FindPendingByDocAndSerial(records []Record, documento, serial string) Record {
	candidates := filterPending(records, func(r Record) bool {
		return SameNormalized(GetField(r, KeysSerial...), serial) &&
			SameNormalized(GetField(r, KeysDocumento...), documento)
	})
	if len(candidates) == 0 {
		return FindPendingBySerial(records, serial)
	}
	return mostRecent(candidates)
}

// FindPendingBySerial busca el movimiento pendiente más reciente para un serial,
// ignorando el documento de la persona.
func FindPendingBySerial(records []Record, serial string) Record {
	candidates := filterPending(records, func(r Record) bool {
		return SameNormalized(GetField(r, KeysSerial...), serial)
	})
	if len(candidates) == 0 {
		return nil
	}
	return mostRecent(candidates)
}

func filterPending(records []Record, match func(Record) bool) []Record {
	var out []Record
	for _, r := range records {
		if r == nil {
			continue
		}
		if match(r) && IsPending(r) {
			out = append(out, r)
		}
	}
	return out
}

// mostRecent ordena por fechaIngreso descendente; los registros con fecha
// interpretable van antes que los que no la tienen. Entre fechas iguales o
// ausentes desempata por id descendente (id ausente cuenta como 0).
func mostRecent(candidates []Record) Record {
	sorted := make([]Record, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := ToDate(GetField(sorted[i], KeysFechaIngreso...))
		tj, okj := ToDate(GetField(sorted[j], KeysFechaIngreso...))
		if oki != okj {
			return oki
		}
		if oki && okj && !ti.Equal(tj) {
			return ti.After(tj)
		}
		return recordID(sorted[i]) > recordID(sorted[j])
	})
	return sorted[0]
}
