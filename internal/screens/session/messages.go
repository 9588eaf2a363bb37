package session

// timerTickMsg is sent every second to advance the countdown. gen ties the
// tick to the chain that scheduled it so ticks from an abandoned chain are
// dropped.
type timerTickMsg struct {
	gen int
}

// welcomeFadeDoneMsg is sent when the welcome overlay has finished fading.
type welcomeFadeDoneMsg struct {
	gen int
}
