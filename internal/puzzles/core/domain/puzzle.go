package domain

import (
	"fmt"

	activity "herring/internal/activity/core/domain"
)

type Round struct {
	ID      int64
	HuntID  int
	Number  int
	Name    string
	HuntURL string
}

type Puzzle struct {
	ID      int64
	RoundID int64
	HuntID  int
	Name    string
	Slug    string
	Number  *int
	Answer  string
	Note    string
	Tags    string
	IsMeta  bool
	HuntURL string
	SheetID string

	ChannelCount    int
	ActivityTracker uint64
	LastActive      int64 // unix ms
}

func (p Puzzle) IsAnswered() bool {
	return p.Answer != ""
}

// SpreadsheetURL is empty until a sheet has been created for the puzzle.
func (p Puzzle) SpreadsheetURL() string {
	if p.SheetID == "" {
		return ""
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", p.SheetID)
}

func (p Puzzle) Tracker() activity.Tracker {
	return activity.Tracker{Bits: p.ActivityTracker, LastActive: p.LastActive}
}

// PuzzleUpdate holds the user editable fields; nil means unchanged.
type PuzzleUpdate struct {
	Answer  *string
	Note    *string
	Tags    *string
	HuntURL *string
}

func (u PuzzleUpdate) IsEmpty() bool {
	return u.Answer == nil && u.Note == nil && u.Tags == nil && u.HuntURL == nil
}
