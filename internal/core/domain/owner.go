package domain

// Owner is a property owner listed by the external owner directory.
type Owner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
