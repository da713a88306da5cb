package quiz

// speechResultMsg reports whether a pronunciation request could start.
type speechResultMsg struct {
	Text string
	Err  error
}
