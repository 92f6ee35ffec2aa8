package blitz

import "time"

// BidWindow is how long after opening a problem the bid may still be
// placed or changed.
const BidWindow = 3 * time.Minute

// BidOpen reports whether the betting window of the start is still open.
func BidOpen(start Start, now time.Time) bool {
	return now.Sub(start.Time) < BidWindow
}

// BidTimeLeft is how many whole seconds remain to place or change the
// bid. Negative once the window has closed.
func BidTimeLeft(start Start, now time.Time) int {
	return int(BidWindow.Seconds()) - int(now.Sub(start.Time).Seconds())
}

// BidLeft is the current worth of the bid: it decays by one point per
// full minute since the problem was opened and never drops below zero.
func BidLeft(start Start, now time.Time) int {
	left := start.Bid - int(now.Sub(start.Time).Seconds())/60
	if left < 0 {
		left = 0
	}
	return left
}
