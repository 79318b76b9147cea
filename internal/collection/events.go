package collection

// ChangeLevel indicates the severity/type of a change message.
type ChangeLevel int

const (
	LevelInfo ChangeLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ChangeEvent represents a collection change or load notification.
//
// Events are informational: the front ends render them, nothing reacts
// to them programmatically. Persistence failures surface here as
// LevelWarning rather than failing the mutation that triggered them.
type ChangeEvent struct {
	Message string
	Level   ChangeLevel
}
