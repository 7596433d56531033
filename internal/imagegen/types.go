package imagegen

import "encoding/json"

// GenerateRequest is the wire payload for the backend's generate endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Size   string `json:"size"`
	Num    int    `json:"num"`
}

// ImageResult is one normalized entry from a generate response. The backend
// may return bare URL strings or {id, url} objects; both collapse into this.
type ImageResult struct {
	ID  string
	URL string
}

type generateResponse struct {
	Images  json.RawMessage `json:"images"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type imageEntry struct {
	ID  string
	URL string
}

func (e *imageEntry) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return err
		}
		e.ID = ""
		e.URL = url
		return nil
	}
	var obj struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.ID = obj.ID
	e.URL = obj.URL
	return nil
}
