package request

import (
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// StatusCreateRequest names a new pipeline stage. The color is assigned
// server-side.
type StatusCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

// StatusUpdateRequest carries a partial stage update; absent fields keep
// their stored value.
type StatusUpdateRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// Validate rejects empty names and non-hex colors before they reach the
// store.
func (r StatusUpdateRequest) Validate() bool {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return false
	}
	if r.Color != nil && !hexColorPattern.MatchString(*r.Color) {
		return false
	}
	return true
}
