package domain

// Filters narrows a listing search. Zero values disable a filter; the
// category "all" is treated like an empty category.
type Filters struct {
	Category string   `json:"category"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	Location string   `json:"location"`
}

// CategoryAll matches every category.
const CategoryAll = "all"

// APIResponse is a standard wrapper for responses
type APIResponse struct {
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Issues []Violation `json:"issues,omitempty"`
	Meta   *Meta       `json:"meta,omitempty"`
}

// Meta carries collection metadata for list responses.
type Meta struct {
	Count int `json:"count"`
}
