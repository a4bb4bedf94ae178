package pairing

// Recommendation is a single drink pairing produced by Gemini. Instances are
// never mutated after decoding, only replaced by a new search.
type Recommendation struct {
	Name           string `json:"name" validate:"required"`
	Type           string `json:"type" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Reasoning      string `json:"reasoning" validate:"required"`
	EstimatedPrice string `json:"estimatedPrice" validate:"required"`
}

// SameAs reports whether two recommendations are the same pairing. Identity
// is the (name, type) pair, compared case-sensitively.
func (r Recommendation) SameAs(other Recommendation) bool {
	return r.Name == other.Name && r.Type == other.Type
}
