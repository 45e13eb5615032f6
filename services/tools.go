package services

import (
	"github.com/Sain-Biswas/gemini-bot/core/types"
	"github.com/Sain-Biswas/gemini-bot/services/tools"
)

// Tools assembles the registry bound to every chat turn. Dispatch is an
// explicit lookup by name over this slice; nothing is resolved by
// reflection.
func Tools(reservations types.ReservationStore, weatherURL string) types.Tools {
	return types.Tools{
		tools.NewGetWeather(weatherURL),
		tools.NewDisplayFlightStatus(),
		tools.NewSearchFlights(),
		tools.NewSelectSeats(),
		tools.NewCreateReservation(reservations),
		tools.NewAuthorizePayment(),
		tools.NewVerifyPayment(reservations),
		tools.NewDisplayBoardingPass(),
	}
}
