package domain

import "time"

// CreatorFields records who created an entity. The display name is a
// snapshot taken at creation time and never follows later renames.
type CreatorFields struct {
	CreatorUserID      string    `json:"userId"`
	CreatorDisplayName string    `json:"userOriginal"`
	CreatedAt          time.Time `json:"createdAt"`
}

// StampedBy returns creator fields for the given identity at time now.
func StampedBy(identity Identity, now time.Time) CreatorFields {
	return CreatorFields{
		CreatorUserID:      identity.UserID,
		CreatorDisplayName: identity.DisplayName(),
		CreatedAt:          now,
	}
}

// StartOfDayUTC truncates t to midnight of its UTC calendar day.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
