package tools

import (
	"hash/fnv"
	"math"
	"strings"
	"time"
)

// ReservationPrice computes the total fare for a trip. It is a pure function
// of the trip parameters: the same flight, seat count and times always price
// identically. The result is stored on the reservation at creation time and
// never recomputed.
func ReservationPrice(flightNumber string, seatCount int, departure, arrival time.Time) float64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToUpper(strings.TrimSpace(flightNumber))))
	baseFare := 59.0 + float64(h.Sum64()%200)

	duration := arrival.Sub(departure)
	if duration <= 0 {
		duration = 2 * time.Hour
	}

	perSeat := baseFare + duration.Hours()*31.0
	if seatCount < 1 {
		seatCount = 1
	}

	total := perSeat * float64(seatCount)
	return math.Round(total*100) / 100
}

// parseTimestamp accepts the timestamp formats the model tends to produce.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
