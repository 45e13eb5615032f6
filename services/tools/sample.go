package tools

import (
	"encoding/json"
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/Sain-Biswas/gemini-bot/core/types"
)

// seededRand returns a generator seeded from the lowercased arguments, so
// repeated invocations with the same arguments produce the same synthetic
// data. Tool executors must be idempotent-safe: the gateway may call them
// more than once.
func seededRand(parts ...string) *rand.Rand {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
		h.Write([]byte{'|'})
	}
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func jsonResult(v interface{}, metadata map[string]interface{}) (types.ToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return types.ToolResult{}, err
	}
	return types.ToolResult{
		Result:   string(b),
		Metadata: metadata,
	}, nil
}

var airlines = []string{
	"Air India",
	"IndiGo",
	"Vistara",
	"United Airlines",
	"Lufthansa",
	"Emirates",
	"Singapore Airlines",
	"Qatar Airways",
}

type city struct {
	Name    string
	Code    string
	Airport string
}

var sampleCities = []city{
	{"Mumbai", "BOM", "Chhatrapati Shivaji Maharaj International Airport"},
	{"Delhi", "DEL", "Indira Gandhi International Airport"},
	{"Bengaluru", "BLR", "Kempegowda International Airport"},
	{"San Francisco", "SFO", "San Francisco International Airport"},
	{"New York", "JFK", "John F. Kennedy International Airport"},
	{"London", "LHR", "Heathrow Airport"},
	{"Singapore", "SIN", "Singapore Changi Airport"},
	{"Dubai", "DXB", "Dubai International Airport"},
}

func indexOfCity(name string) int {
	for i, c := range sampleCities {
		if c.Name == name {
			return i
		}
	}
	return 0
}

// airportCode derives a stable three-letter code for free-form city input.
func airportCode(city string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(city))
	letters := []rune{}
	for _, r := range trimmed {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return string(letters[:3])
}
