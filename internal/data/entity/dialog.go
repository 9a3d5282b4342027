package entity

// StatusDialog is the modal reporting the outcome of a mutating action.
type StatusDialog struct {
	Title   string
	Message string
	Open    bool
}

func (d *StatusDialog) Show(message string) {
	d.Message = message
	d.Open = true
}

// Close hides the dialog. The message is kept; nothing else changes.
func (d *StatusDialog) Close() {
	d.Open = false
}
