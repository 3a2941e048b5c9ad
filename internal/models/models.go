package models

import "time"

// Required schedule columns, in the order they are checked and reported.
const (
	ColCityName       = "cityName"
	ColVenueName      = "venueName"
	ColMatchTypeName  = "matchTypeName"
	ColStartTime      = "startTime"
	ColEndTime        = "endTime"
	ColPlayerCapacity = "playerCapacity"
	ColSlotPrice      = "slotPrice"
	ColOfferPrice     = "offerPrice"
)

var RequiredColumns = []string{
	ColCityName,
	ColVenueName,
	ColMatchTypeName,
	ColStartTime,
	ColEndTime,
	ColPlayerCapacity,
	ColSlotPrice,
	ColOfferPrice,
}

// ScheduleRow is one validated match slot.
type ScheduleRow struct {
	Row int // spreadsheet row number, header is row 1

	CityName      string
	VenueName     string
	MatchTypeName string

	StartTime time.Time
	EndTime   time.Time

	PlayerCapacity int
	SlotPrice      float64
	OfferPrice     float64
}

// HalfCapacity is the players per side, as in "5v5".
func (r ScheduleRow) HalfCapacity() int {
	return r.PlayerCapacity / 2
}

// ScheduleTable is the validated schedule in sheet order. The first row's
// city heads the announcement.
type ScheduleTable []ScheduleRow

func (t ScheduleTable) City() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].CityName
}
