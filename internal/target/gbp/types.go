package gbp

// LocalPost is the localPosts creation payload.
type LocalPost struct {
	LanguageCode string      `json:"languageCode"`
	Summary      string      `json:"summary"`
	Media        []MediaItem `json:"media"`
}

type MediaItem struct {
	MediaFormat string `json:"mediaFormat"`
	SourceURL   string `json:"sourceUrl"`
}

// errorResponse is the Google API error envelope.
type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
