package usecase

// ToolSpec describes one tool for discovery: name, description, and a
// JSON-schema-shaped input contract.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type Manifest struct {
	Service string     `json:"service"`
	Version string     `json:"version"`
	Tools   []ToolSpec `json:"tools"`
}

// BuildManifest returns the static capability manifest served at
// /manifest.json.
func BuildManifest() *Manifest {
	return &Manifest{
		Service: "amc-tools",
		Version: "1.0.0",
		Tools: []ToolSpec{
			{
				Name:        "list_theaters",
				Description: "Find AMC theaters near a ZIP code.",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"zip": map[string]any{
							"type":        "string",
							"pattern":     `^\d{5}(-\d{4})?$`,
							"description": "5-digit ZIP code (12345 or 12345-6789)",
						},
						"radius": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     100,
							"description": "Search radius in miles (default 25)",
						},
					},
					"required": []string{"zip"},
				},
			},
			{
				Name:        "list_movies",
				Description: "List movies currently playing in AMC theaters.",
				InputSchema: map[string]any{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
			{
				Name:        "list_showtimes",
				Description: "List showtimes for a theater on a date.",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"theaterId": map[string]any{
							"type":        "string",
							"description": "AMC theater id",
						},
						"date": map[string]any{
							"type":        "string",
							"pattern":     `^\d{4}-\d{2}-\d{2}$`,
							"description": "Date in YYYY-MM-DD format",
						},
					},
					"required": []string{"theaterId", "date"},
				},
			},
			{
				Name:        "reserve_tickets",
				Description: "Create a placeholder reservation (no vendor-side effect).",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"showtimeId": map[string]any{
							"type":        "string",
							"description": "AMC showtime id",
						},
						"quantity": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     10,
							"description": "Number of tickets",
						},
					},
					"required": []string{"showtimeId", "quantity"},
				},
			},
			{
				Name:        "book_tickets",
				Description: "Purchase tickets on amctheatres.com through a headless browser, emulating a human checkout.",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"email": map[string]any{
							"type":        "string",
							"format":      "email",
							"description": "AMC account email",
						},
						"password": map[string]any{
							"type":        "string",
							"description": "AMC account password",
						},
						"theaterId": map[string]any{
							"type":        "string",
							"description": "AMC theater id",
						},
						"showtimeId": map[string]any{
							"type":        "string",
							"description": "AMC showtime id",
						},
						"seatCount": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     10,
							"description": "Number of seats to book",
						},
						"seatPreferences": map[string]any{
							"type":        "object",
							"description": "Preferred row/position (accepted but not yet applied)",
							"properties": map[string]any{
								"row":      map[string]any{"type": "string"},
								"position": map[string]any{"type": "string"},
							},
						},
						"useBenefit": map[string]any{
							"type":        "boolean",
							"description": "Use a loyalty benefit for a free reservation",
						},
					},
					"required": []string{"email", "password", "theaterId", "showtimeId", "seatCount"},
				},
			},
		},
	}
}
