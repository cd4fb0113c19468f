package ui

import "time"

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	list string
	err  error
}

// clearStatusMsg clears the status line if it still shows the message
// set at the given time
type clearStatusMsg struct {
	setAt time.Time
}
