package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText places text on the clipboard.
	WriteText(text string) error
}
