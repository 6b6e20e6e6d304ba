package instagram

// listResponse is the Graph API media listing response.
type listResponse struct {
	Data   []Media `json:"data"`
	Paging *Paging `json:"paging"`
}

type Paging struct {
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

type Media struct {
	ID           string `json:"id"`
	MediaURL     string `json:"media_url"`
	Caption      string `json:"caption"`
	Timestamp    string `json:"timestamp"`
	MediaType    string `json:"media_type"`
	Permalink    string `json:"permalink"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// errorResponse is the Graph API error envelope.
type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}
