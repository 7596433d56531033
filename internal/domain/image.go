package domain

import "time"

// Styles are the fixed style labels the panel form offers.
var Styles = []string{"realistic", "cartoon", "anime", "watercolor", "oil painting", "cyberpunk"}

// Sizes are the fixed WxH output dimensions the panel form offers.
var Sizes = []string{"256x256", "512x512", "768x768", "1024x1024"}

const (
	DefaultStyle = "realistic"
	DefaultSize  = "512x512"
	DefaultCount = 1
	MaxCount     = 10

	// MaxResults caps the result history; oldest entries past the cap are
	// silently dropped.
	MaxResults = 100
)

// GeneratedImage is one entry in the panel's result history. Immutable once
// created; it leaves the list only through an explicit delete or a full clear.
type GeneratedImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt"`
	Style     string    `json:"style"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidStyle reports whether s is one of the fixed style labels.
func ValidStyle(s string) bool {
	for _, style := range Styles {
		if style == s {
			return true
		}
	}
	return false
}

// ValidSize reports whether s is one of the fixed WxH dimensions.
func ValidSize(s string) bool {
	for _, size := range Sizes {
		if size == s {
			return true
		}
	}
	return false
}

// ClampCount forces a requested quantity into [1, MaxCount].
func ClampCount(n int) int {
	if n <= 0 {
		return DefaultCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
