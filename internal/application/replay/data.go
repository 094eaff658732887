package replay

// Version is written into every recording
const Version = "1.0"

// FrameIntent records one transition command and the frame it was issued on
type FrameIntent struct {
	F   int    `json:"f"`   // Frame number
	Cmd string `json:"cmd"` // Command line, e.g. "push Paused"
}

// ReplayData contains all data needed to replay a session's transitions
type ReplayData struct {
	Version   string        `json:"version"`
	Initial   string        `json:"initial"`
	StartTime string        `json:"startTime"`
	Frames    []FrameIntent `json:"frames"`
}
