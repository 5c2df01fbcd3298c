package model

// ResetBinding ties a resettable property to its reset method name for the
// duration of one projection call. It is never stored on a ClassInterface.
type ResetBinding struct {
	Property  string
	ResetName string
	Direction Direction
}
