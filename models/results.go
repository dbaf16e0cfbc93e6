package models

// RankingEntry is one destination's tally in the group results
type RankingEntry struct {
	DestID string `json:"destId"`
	Votes  int    `json:"votes"`
}

// DateRange is an inclusive calendar-date interval
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// GroupResults is the derived view clients poll for: the destination
// ranking, how many members have voted, and the common date window.
// DateOverlap is null both when fewer than two members have voted
// (overlap undefined) and when the windows do not intersect; clients
// tell the two apart via MemberCount.
type GroupResults struct {
	Ranking     []RankingEntry `json:"ranking"`
	MemberCount int            `json:"memberCount"`
	DateOverlap *DateRange     `json:"dateOverlap"`
}
