package utils

import (
	"fmt"
	"time"
)

// DateRange representa um intervalo fechado de datas [Since, Until]
type DateRange struct {
	Since time.Time
	Until time.Time
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SplitDateRange divide [start, end] em sub-intervalos ordenados, contíguos e
// sem sobreposição, cada um cobrindo no máximo maxDays dias. Usado para
// respeitar o limite de volume por requisição da API de insights.
func SplitDateRange(start, end time.Time, maxDays int) ([]DateRange, error) {
	if maxDays < 1 {
		return nil, fmt.Errorf("maxDays deve ser no mínimo 1, recebido: %d", maxDays)
	}

	start = truncateToDay(start)
	end = truncateToDay(end)

	if start.After(end) {
		return nil, fmt.Errorf("data inicial %s posterior à data final %s",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	chunks := make([]DateRange, 0)
	for cursor := start; !cursor.After(end); {
		until := cursor.AddDate(0, 0, maxDays-1)
		if until.After(end) {
			until = end
		}

		chunks = append(chunks, DateRange{Since: cursor, Until: until})
		cursor = until.AddDate(0, 0, 1)
	}

	return chunks, nil
}

// Days retorna o número de dias cobertos pelo intervalo (inclusivo)
func (r DateRange) Days() int {
	return int(r.Until.Sub(r.Since).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
