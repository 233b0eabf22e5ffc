package dom

// GetConfirmation prompts with message and hands the answer to callback
// before returning. The prompt blocks until the user responds.
func GetConfirmation(w Window, message string, callback func(confirmed bool)) {
	callback(w.Confirm(message))
}
