package controller

// Messages shown to the user through the Notifier.
const (
	AlertBlocked        = "This site has been blocked!"
	AlertBlockFailed    = "Failed to block the site!"
	AlertSelectFeedback = "Please select your feedback."
	AlertFeedbackThanks = "Thank you for your feedback!"
	AlertClassifyFailed = "Failed to check the URL."
)

// Notifier shows short messages to the user.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Alert calls f(message).
func (f NotifierFunc) Alert(message string) {
	f(message)
}

// discardNotifier drops every message.
type discardNotifier struct{}

func (discardNotifier) Alert(string) {}
