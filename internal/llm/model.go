package llm

// Schema declares the JSON shape a generation must produce. It mirrors the
// Gemini responseSchema wire format.
type Schema struct {
	Type             string            `json:"type"`
	Description      string            `json:"description,omitempty"`
	Items            *Schema           `json:"items,omitempty"`
	Properties       map[string]Schema `json:"properties,omitempty"`
	Required         []string          `json:"required,omitempty"`
	PropertyOrdering []string          `json:"propertyOrdering,omitempty"`
}

// GroundingChunk is one retrieval source attached to a grounded response.
// Only the maps variant is populated by the location-retrieval tool.
type GroundingChunk struct {
	Maps *MapsPlace `json:"maps,omitempty"`
}

// MapsPlace is a real-world place referenced by grounding metadata.
type MapsPlace struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}
