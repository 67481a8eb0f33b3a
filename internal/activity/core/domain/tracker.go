package domain

import (
	"fmt"
	"strings"
)

const windowMask = uint64(1)<<Periods - 1

// Tracker is the stored form of a puzzle's activity. Bit 0 of Bits is the
// period containing LastActive, bit k the period k periods before it.
type Tracker struct {
	Bits       uint64
	LastActive int64 // unix ms, 0 when nothing was ever recorded
}

// Record marks the period containing at as active. Newer activity moves
// LastActive forward and shifts older periods along; late activity only sets
// its bit if it still falls inside the window. It reports whether the
// tracker changed.
func (t *Tracker) Record(at int64) bool {
	shift := floorDiv(at, PeriodMS) - floorDiv(t.LastActive, PeriodMS)

	if at > t.LastActive {
		t.LastActive = at
		if shift < Periods {
			t.Bits = (t.Bits << uint(shift)) & windowMask
		} else {
			t.Bits = 0
		}
		t.Bits |= 1
		return true
	}

	back := -shift
	if back >= Periods {
		return false
	}
	bits := t.Bits | uint64(1)<<uint(back)
	changed := bits != t.Bits
	t.Bits = bits
	return changed
}

// Histogram renders Bits in the wire format Bucketize reads.
func (t Tracker) Histogram() string {
	return fmt.Sprintf("%0*x", HistogramDigits, t.Bits&windowMask)
}

// Participant is one chat user's presence in a puzzle channel.
type Participant struct {
	Slug        string
	UserID      string
	DisplayName string
	IsMember    bool
	LastActive  int64
}

// Name is the label shown in the active users list. Without a display name,
// chat handles like "alice#1234" lose their discriminator.
func (p Participant) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if i := strings.LastIndex(p.UserID, "#"); i >= 0 {
		return p.UserID[:i]
	}
	return p.UserID
}
