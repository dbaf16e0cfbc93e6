package models

import "time"

// Room holds one group's trip planning state: a shareable code, a label
// and the votes submitted so far, in submission order.
type Room struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Votes     []Vote    `json:"votes"`
}

// Vote is a single participant's destination picks plus the date window
// they are available to travel in. A participant resubmitting replaces
// their previous vote wholesale.
type Vote struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Destinations []string  `json:"destinations"`
	DateFrom     Date      `json:"dateFrom"`
	DateTo       Date      `json:"dateTo"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
