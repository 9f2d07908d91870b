package play

import "time"

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the answer feedback is dismissed.
type feedbackDoneMsg struct{}

// sessionEndMsg triggers the end-of-session flow.
type sessionEndMsg struct{}
