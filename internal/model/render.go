package model

// Mood is an animation hint for the status icon.
type Mood string

// Available Mood values.
const (
	MoodNone  Mood = ""
	MoodPulse Mood = "pulse"
)

// RenderState is a renderer-agnostic snapshot of the scanner.
type RenderState struct {
	Sequence uint64 // bumped on every state change and tick
	Effect   Effect
	Status   string
	Icon     string
	Mood     Mood

	// Set while sweeping. Progress is Position scaled to [0, 1] between the
	// sweep bounds.
	Position  float64
	Direction Direction
	Progress  float64

	// Set during a narrow scan.
	PartID       string
	PartLabel    string
	PartPosition float64
}
