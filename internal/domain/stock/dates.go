package stock

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceptados por los filtros de fecha de los reportes. Se intenta
// ISO primero (con o sin hora) y luego dd-mm-yyyy de diez caracteres.
var dateOnlyLayouts = []string{
	"2006-01-02",
	"02-01-2006",
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate interpreta un filtro de fecha flexible. Devuelve el instante y si
// el input era solo-fecha (sin componente horario).
func ParseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, fmt.Errorf("fecha vacía")
	}
	if strings.Contains(s, "T") {
		for _, layout := range dateTimeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, false, nil
			}
		}
		return time.Time{}, false, fmt.Errorf("formato de fecha no soportado: %q", s)
	}
	if len(s) == 10 {
		for _, layout := range dateOnlyLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true, nil
			}
		}
	}
	return time.Time{}, false, fmt.Errorf("formato de fecha no soportado: %q", s)
}

// ParseRangeStart interpreta el inicio de un rango (la fecha se toma a medianoche).
func ParseRangeStart(s string) (time.Time, error) {
	t, _, err := ParseDate(s)
	return t, err
}

// ParseRangeEnd interpreta el fin de un rango. Un input solo-fecha cubre el
// día completo: se extiende a 23:59:59 para que el corte incluya todos los
// movimientos de ese día.
func ParseRangeEnd(s string) (time.Time, error) {
	t, dateOnly, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if dateOnly {
		t = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return t, nil
}

// Cutoff resuelve el corte efectivo de una consulta de snapshot: date_to si
// está presente; si solo llega date_from, se usa como corte (la consulta
// "desde" equivale a "stock al inicio de la ventana"). Sin filtros no hay
// corte y el llamador reporta el stock vivo.
func Cutoff(dateFrom, dateTo string) (t time.Time, ok bool, err error) {
	if dateTo != "" {
		t, err = ParseRangeEnd(dateTo)
		return t, err == nil, err
	}
	if dateFrom != "" {
		t, err = ParseRangeStart(dateFrom)
		return t, err == nil, err
	}
	return time.Time{}, false, nil
}
