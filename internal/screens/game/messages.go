package game

// tickMsg redraws the running clock. Ticks from an older generation are
// dropped, which is how the refresh loop is cancelled.
type tickMsg struct {
	gen int
}

// flashDoneMsg clears the correct/incorrect highlight.
type flashDoneMsg struct {
	gen int
}

// videoChosenMsg is sent when a video choice button is pressed on the
// result screen.
type videoChosenMsg struct {
	label string
}
