package port

// CommandCapture holds the merged stdout and stderr of one command. Restore
// detaches it from the command; Finish restores and returns what was
// written.
type CommandCapture interface {
	Finish() []byte
	Restore()
}
