package dto

// Lyrics is optional: empty or whitespace-only lyrics select the server-side
// placeholder. Gender is MALE or FEMALE; the client resolves RANDOM itself.
type AnalyzeLyricsRequest struct {
	Lyrics string `json:"lyrics"`
	Gender string `json:"gender"`
}
