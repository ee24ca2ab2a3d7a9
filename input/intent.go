package input

// IntentType discriminates semantic actions produced by discrete key events
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // Esc, Ctrl+C, q
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

// Intent is the result of processing one terminal event
type Intent struct {
	Type IntentType
}
