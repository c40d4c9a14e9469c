package omdb

import "strconv"

// Response is the raw OMDb API response for a single title lookup.
type Response struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Poster     string   `json:"Poster"`
	Ratings    []Rating `json:"Ratings"`
	ImdbRating string   `json:"imdbRating"`
	ImdbVotes  string   `json:"imdbVotes"`
	ImdbID     string   `json:"imdbID"`
	Type       string   `json:"Type"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error,omitempty"`
}

// Rating is a single rating from one source.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// SearchResponse is the raw OMDb API response for a search.
type SearchResponse struct {
	Search       []SearchEntry `json:"Search"`
	TotalResults string        `json:"totalResults"`
	Response     string        `json:"Response"`
	Error        string        `json:"Error,omitempty"`
}

// SearchEntry is one search hit.
type SearchEntry struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Movie is the normalized single-title result. String fields keep the OMDb
// display values ("N/A" sentinels included); ImdbRating is parsed, with
// unparseable values normalized to 0.
type Movie struct {
	ImdbID     string  `json:"imdbId"`
	Title      string  `json:"title"`
	Year       string  `json:"year"`
	Runtime    string  `json:"runtime"`
	Genre      string  `json:"genre,omitempty"`
	Director   string  `json:"director,omitempty"`
	Actors     string  `json:"actors,omitempty"`
	Plot       string  `json:"plot,omitempty"`
	Poster     string  `json:"poster"`
	ImdbRating float64 `json:"imdbRating"`
	Type       string  `json:"type,omitempty"`
}

func normalizeMovie(resp Response) *Movie {
	rating, err := strconv.ParseFloat(resp.ImdbRating, 64)
	if err != nil {
		rating = 0
	}

	return &Movie{
		ImdbID:     resp.ImdbID,
		Title:      resp.Title,
		Year:       resp.Year,
		Runtime:    resp.Runtime,
		Genre:      resp.Genre,
		Director:   resp.Director,
		Actors:     resp.Actors,
		Plot:       resp.Plot,
		Poster:     resp.Poster,
		ImdbRating: rating,
		Type:       resp.Type,
	}
}
