package request

// ReserveTicketsRequest is the input for the reserve_tickets stub.
type ReserveTicketsRequest struct {
	ShowtimeID string `json:"showtimeId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=10"`
}

// SeatPreferences is accepted and validated but does not yet influence
// seat picking; see the booking driver.
type SeatPreferences struct {
	Row      string `json:"row,omitempty"`
	Position string `json:"position,omitempty"`
}

// BookTicketsRequest is the input for the book_tickets tool.
type BookTicketsRequest struct {
	Email           string           `json:"email" validate:"required,email"`
	Password        string           `json:"password" validate:"required"`
	TheaterID       string           `json:"theaterId" validate:"required"`
	ShowtimeID      string           `json:"showtimeId" validate:"required"`
	SeatCount       int              `json:"seatCount" validate:"required,min=1,max=10"`
	SeatPreferences *SeatPreferences `json:"seatPreferences,omitempty"`
	UseBenefit      bool             `json:"useBenefit,omitempty"`
}
