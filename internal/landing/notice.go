package landing

// NoticeKind selects how a notice is styled
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message shown after a form submit
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

var (
	ContactSentNotice = Notice{
		Kind:    NoticeSuccess,
		Title:   "Success!",
		Message: "Thank you for contacting us. We'll get back to you soon!",
	}
	ContactFailedNotice = Notice{
		Kind:    NoticeError,
		Title:   "Error",
		Message: "Something went wrong. Please try again.",
	}
	SubscribedNotice = Notice{
		Kind:    NoticeSuccess,
		Title:   "Subscribed!",
		Message: "You've been added to our newsletter.",
	}
	SubscribeFailedNotice = Notice{
		Kind:    NoticeError,
		Title:   "Error",
		Message: "Could not subscribe. Please try again.",
	}
)
