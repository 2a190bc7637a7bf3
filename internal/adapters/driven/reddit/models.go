package reddit

// Listing thing kinds.
const (
	kindComment = "t1"
	kindLink    = "t3"
)

// listing is the Reddit Listing envelope returned by user content endpoints.
type listing struct {
	Kind string      `json:"kind"`
	Data listingData `json:"data"`
}

// listingData holds the page of things plus pagination cursors.
type listingData struct {
	After    string  `json:"after"`
	Before   string  `json:"before"`
	Children []thing `json:"children"`
}

// thing is one element of a listing; Kind discriminates the payload.
type thing struct {
	Kind string    `json:"kind"`
	Data thingData `json:"data"`
}

// thingData carries the fields shared by submissions (t3) and comments (t1).
// Fields absent for a kind unmarshal to their zero values.
type thingData struct {
	// Submission fields.
	Title    string `json:"title"`
	Selftext string `json:"selftext"`

	// Comment fields.
	Body string `json:"body"`

	// Shared fields.
	Subreddit  string  `json:"subreddit"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}
