package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// addScreeningRequest は上映追加の入力を表す
type addScreeningRequest struct {
	MovieTitle string `validate:"required"`
	Time       string `validate:"required"`
	TotalSeats int    `validate:"required,gt=0"`
}

// bookTicketsRequest はチケット予約の入力を表す
type bookTicketsRequest struct {
	ScreeningID string `validate:"required"`
	NumTickets  int    `validate:"required,gt=0"`
}

// cancelBookingRequest は予約取り消しの入力を表す
type cancelBookingRequest struct {
	BookingID string `validate:"required"`
}

func newValidator() *validator.Validate {
	return validator.New()
}

// parseCount は件数入力を整数として解釈する。整数でない入力
// （例: "two"）は強制変換せず、パニックも起こさずにエラーとして返す
func parseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("整数を入力してください: %q", raw)
	}
	return n, nil
}
