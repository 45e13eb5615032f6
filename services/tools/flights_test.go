package tools_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Sain-Biswas/gemini-bot/core/types"
	"github.com/Sain-Biswas/gemini-bot/services/tools"
)

var _ = Describe("SearchFlights", func() {
	var tool *tools.SearchFlightsTool

	BeforeEach(func() {
		tool = tools.NewSearchFlights()
	})

	It("returns four flights between the requested cities", func() {
		res, err := tool.Run(context.TODO(), nil, types.ToolParams{"origin": "Mumbai", "destination": "Delhi"})
		Expect(err).ToNot(HaveOccurred())
		Expect(res.Metadata["count"]).To(Equal(4))

		var payload struct {
			Flights []struct {
				FlightNumber string  `json:"flightNumber"`
				Airlines     string  `json:"airlines"`
				PriceInUSD   float64 `json:"priceInUSD"`
				Departure    struct {
					CityName    string `json:"cityName"`
					AirportCode string `json:"airportCode"`
					Timestamp   string `json:"timestamp"`
				} `json:"departure"`
				Arrival struct {
					CityName string `json:"cityName"`
				} `json:"arrival"`
			} `json:"flights"`
		}
		Expect(json.Unmarshal([]byte(res.Result), &payload)).To(Succeed())
		Expect(payload.Flights).To(HaveLen(4))
		for _, f := range payload.Flights {
			Expect(f.Departure.CityName).To(Equal("Mumbai"))
			Expect(f.Arrival.CityName).To(Equal("Delhi"))
			Expect(f.FlightNumber).ToNot(BeEmpty())
			Expect(f.Airlines).ToNot(BeEmpty())
			Expect(f.PriceInUSD).To(BeNumerically(">", 0))
		}
	})

	It("is deterministic for identical arguments", func() {
		params := types.ToolParams{"origin": "Mumbai", "destination": "Delhi"}
		first, err := tool.Run(context.TODO(), nil, params)
		Expect(err).ToNot(HaveOccurred())
		second, err := tool.Run(context.TODO(), nil, params)
		Expect(err).ToNot(HaveOccurred())
		Expect(first.Result).To(Equal(second.Result))
	})

	It("requires origin and destination", func() {
		_, err := tool.Run(context.TODO(), nil, types.ToolParams{"origin": "Mumbai"})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SelectSeats", func() {
	var tool *tools.SelectSeatsTool

	BeforeEach(func() {
		tool = tools.NewSelectSeats()
	})

	It("returns a five-row, four-column seat map", func() {
		res, err := tool.Run(context.TODO(), nil, types.ToolParams{"flightNumber": "AI202"})
		Expect(err).ToNot(HaveOccurred())

		var payload struct {
			Seats [][]struct {
				SeatNumber  string  `json:"seatNumber"`
				PriceInUSD  float64 `json:"priceInUSD"`
				IsAvailable bool    `json:"isAvailable"`
			} `json:"seats"`
		}
		Expect(json.Unmarshal([]byte(res.Result), &payload)).To(Succeed())
		Expect(payload.Seats).To(HaveLen(5))
		for _, row := range payload.Seats {
			Expect(row).To(HaveLen(4))
			for _, s := range row {
				Expect(s.SeatNumber).ToNot(BeEmpty())
				Expect(s.PriceInUSD).To(BeNumerically(">", 0))
			}
		}
	})

	It("is deterministic for the same flight", func() {
		first, err := tool.Run(context.TODO(), nil, types.ToolParams{"flightNumber": "AI202"})
		Expect(err).ToNot(HaveOccurred())
		second, err := tool.Run(context.TODO(), nil, types.ToolParams{"flightNumber": "AI202"})
		Expect(err).ToNot(HaveOccurred())
		Expect(first.Result).To(Equal(second.Result))
	})
})

var _ = Describe("DisplayFlightStatus", func() {
	var tool *tools.DisplayFlightStatusTool

	BeforeEach(func() {
		tool = tools.NewDisplayFlightStatus()
	})

	It("returns a status record for the flight", func() {
		res, err := tool.Run(context.TODO(), nil, types.ToolParams{"flightNumber": "AI202", "date": "2026-09-01"})
		Expect(err).ToNot(HaveOccurred())

		var payload struct {
			FlightNumber string `json:"flightNumber"`
			Departure    struct {
				CityName    string `json:"cityName"`
				AirportName string `json:"airportName"`
				Gate        string `json:"gate"`
			} `json:"departure"`
			Arrival struct {
				CityName string `json:"cityName"`
			} `json:"arrival"`
			TotalDistanceInMiles int `json:"totalDistanceInMiles"`
		}
		Expect(json.Unmarshal([]byte(res.Result), &payload)).To(Succeed())
		Expect(payload.FlightNumber).To(Equal("AI202"))
		Expect(payload.Departure.CityName).ToNot(BeEmpty())
		Expect(payload.Departure.CityName).ToNot(Equal(payload.Arrival.CityName))
		Expect(payload.TotalDistanceInMiles).To(BeNumerically(">", 0))
	})

	It("is deterministic for the same flight and date", func() {
		params := types.ToolParams{"flightNumber": "AI202", "date": "2026-09-01"}
		first, err := tool.Run(context.TODO(), nil, params)
		Expect(err).ToNot(HaveOccurred())
		second, err := tool.Run(context.TODO(), nil, params)
		Expect(err).ToNot(HaveOccurred())
		Expect(first.Result).To(Equal(second.Result))
	})
})

var _ = Describe("DisplayBoardingPass", func() {
	It("echoes the provided structured data", func() {
		tool := tools.NewDisplayBoardingPass()
		params := types.ToolParams{
			"reservationId": "res-42",
			"passengerName": "Jane Doe",
			"flightNumber":  "AI202",
			"seat":          "2A",
		}
		res, err := tool.Run(context.TODO(), nil, params)
		Expect(err).ToNot(HaveOccurred())

		var payload map[string]interface{}
		Expect(json.Unmarshal([]byte(res.Result), &payload)).To(Succeed())
		Expect(payload["reservationId"]).To(Equal("res-42"))
		Expect(payload["passengerName"]).To(Equal("Jane Doe"))
		Expect(payload["seat"]).To(Equal("2A"))
	})
})
