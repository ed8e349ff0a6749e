package flow

// Button is one inline-menu entry: a display label and the callback data the
// transport sends back when it is pressed.
type Button struct {
	Label string
	Data  string
}

// Message is one outbound message: prompt text plus an optional inline menu
// (rows of buttons).
type Message struct {
	Text     string
	Keyboard [][]Button
}

// Reply is the rendering instruction returned for one inbound event. The
// transport delivers Messages in order; a non-empty Alert is shown as a
// blocking popup instead of a message (used for the empty-hashtags warning).
type Reply struct {
	Messages []Message
	Alert    string
}

func textReply(text string) Reply {
	return Reply{Messages: []Message{{Text: text}}}
}

func menuReply(text string, rows [][]Button) Reply {
	return Reply{Messages: []Message{{Text: text, Keyboard: rows}}}
}

// row wraps buttons into a single keyboard row.
func row(buttons ...Button) []Button { return buttons }
