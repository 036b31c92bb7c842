package model

// BodyPart is one entry of the body part catalog.
type BodyPart struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label"`
	Position    float64  `yaml:"position"` // percent of body height, measured from the top
	Keywords    []string `yaml:"keywords"`
	Description string   `yaml:"description"`
}
