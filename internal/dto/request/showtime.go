package request

// ListShowtimesRequest is the input for the list_showtimes tool.
type ListShowtimesRequest struct {
	TheaterID string `json:"theaterId" validate:"required"`
	Date      string `json:"date" validate:"required,bookingdate"`
}
