package request

// ListTheatersRequest is the input for the list_theaters tool.
type ListTheatersRequest struct {
	Zip string `json:"zip" validate:"required,zip"`
	// Radius in miles; vendor default of 25 applies when omitted
	Radius int `json:"radius,omitempty" validate:"omitempty,min=1,max=100"`
}
