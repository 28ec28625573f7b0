package event

// Range is a byte range into a widget's text contents.
type Range struct {
	Start int
	End   int
}

// TextEvent is one of TextPaste or TextIme.
type TextEvent interface {
	isTextEvent()
}

// TextPaste delivers pasted clipboard contents.
type TextPaste struct {
	Text string
}

// TextIme delivers an input-method event.
type TextIme struct {
	Ime ImeEvent
}

func (TextPaste) isTextEvent() {}
func (TextIme) isTextEvent()   {}

// ImeEvent is one of ImeStart, ImeEnd, ImeCommit or ImeSelect.
type ImeEvent interface {
	isImeEvent()
}

// ImeStart begins an input-method session on the focused widget.
type ImeStart struct{}

// ImeEnd ends the input-method session.
type ImeEnd struct{}

// ImeCommit commits composed text.
type ImeCommit struct {
	Text string
}

// ImeSelect updates the selected range within the composing text.
type ImeSelect struct {
	Selection Range
}

func (ImeStart) isImeEvent()  {}
func (ImeEnd) isImeEvent()    {}
func (ImeCommit) isImeEvent() {}
func (ImeSelect) isImeEvent() {}
