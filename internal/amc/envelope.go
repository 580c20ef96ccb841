package amc

// The vendor has shipped several response wrappers across API versions:
// a bare {"data":[...]}, a {"movies":[...]} style keyed by resource name,
// and a HAL-style {"_embedded":{...}} wrapper. Each envelope below is a
// tagged union of the known shapes, normalized in a fixed priority order
// (newest first). An unknown-but-parseable shape normalizes to an empty
// list rather than an error.

type movieEnvelope struct {
	Data     []movieDoc `json:"data"`
	Movies   []movieDoc `json:"movies"`
	Embedded struct {
		Movies []movieDoc `json:"movies"`
	} `json:"_embedded"`
}

func (e *movieEnvelope) normalize() []Movie {
	var docs []movieDoc
	switch {
	case len(e.Data) > 0:
		docs = e.Data
	case len(e.Movies) > 0:
		docs = e.Movies
	case len(e.Embedded.Movies) > 0:
		docs = e.Embedded.Movies
	}

	movies := make([]Movie, len(docs))
	for i, doc := range docs {
		movies[i] = doc.toMovie()
	}
	return movies
}

type theaterEnvelope struct {
	Data     []theaterDoc `json:"data"`
	Theatres []theaterDoc `json:"theatres"`
	Embedded struct {
		Theatres []theaterDoc `json:"theatres"`
	} `json:"_embedded"`
}

func (e *theaterEnvelope) normalize() []Theater {
	var docs []theaterDoc
	switch {
	case len(e.Data) > 0:
		docs = e.Data
	case len(e.Theatres) > 0:
		docs = e.Theatres
	case len(e.Embedded.Theatres) > 0:
		docs = e.Embedded.Theatres
	}

	theaters := make([]Theater, len(docs))
	for i, doc := range docs {
		theaters[i] = doc.toTheater()
	}
	return theaters
}

type showtimeEnvelope struct {
	Data     []showtimeDoc `json:"data"`
	Embedded struct {
		Showtimes []showtimeDoc `json:"showtimes"`
	} `json:"_embedded"`
}

func (e *showtimeEnvelope) normalize() []Showtime {
	var docs []showtimeDoc
	switch {
	case len(e.Data) > 0:
		docs = e.Data
	case len(e.Embedded.Showtimes) > 0:
		docs = e.Embedded.Showtimes
	}

	showtimes := make([]Showtime, len(docs))
	for i, doc := range docs {
		showtimes[i] = doc.toShowtime()
	}
	return showtimes
}

type suggestionEnvelope struct {
	Data     []suggestionDoc `json:"data"`
	Embedded struct {
		Suggestions []suggestionDoc `json:"suggestions"`
	} `json:"_embedded"`
}

type suggestionDoc struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// firstCoordinates returns the first suggestion carrying usable
// coordinates, or false when none do.
func (e *suggestionEnvelope) firstCoordinates() (lat, lon float64, ok bool) {
	docs := e.Data
	if len(docs) == 0 {
		docs = e.Embedded.Suggestions
	}
	for _, doc := range docs {
		if doc.Latitude != 0 || doc.Longitude != 0 {
			return doc.Latitude, doc.Longitude, true
		}
	}
	return 0, 0, false
}
