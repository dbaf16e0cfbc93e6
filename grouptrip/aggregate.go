package grouptrip

import (
	"sort"

	"github.com/hoplytravel/hoply-api/models"
)

// Aggregate reduces a room snapshot into the results view. It is a pure
// function of the vote set: the ranking counts distinct voters per
// destination and breaks ties by the order each destination first
// appeared across votes, so the output never depends on map iteration
// order. Safe to call concurrently on snapshots of the same room.
func Aggregate(room models.Room) models.GroupResults {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, vote := range room.Votes {
		for _, destID := range vote.Destinations {
			if _, seen := firstSeen[destID]; !seen {
				firstSeen[destID] = len(firstSeen)
			}
			counts[destID]++
		}
	}

	ranking := make([]models.RankingEntry, 0, len(counts))
	for destID, votes := range counts {
		ranking = append(ranking, models.RankingEntry{DestID: destID, Votes: votes})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Votes != ranking[j].Votes {
			return ranking[i].Votes > ranking[j].Votes
		}
		return firstSeen[ranking[i].DestID] < firstSeen[ranking[j].DestID]
	})

	return models.GroupResults{
		Ranking:     ranking,
		MemberCount: len(room.Votes),
		DateOverlap: dateOverlap(room.Votes),
	}
}

// dateOverlap intersects the availability windows of all votes. With
// fewer than two votes the overlap is undefined and nil is returned;
// with two or more, nil means the windows do not intersect.
func dateOverlap(votes []models.Vote) *models.DateRange {
	if len(votes) < 2 {
		return nil
	}

	maxFrom := votes[0].DateFrom
	minTo := votes[0].DateTo
	for _, vote := range votes[1:] {
		if vote.DateFrom.After(maxFrom) {
			maxFrom = vote.DateFrom
		}
		if vote.DateTo.Before(minTo) {
			minTo = vote.DateTo
		}
	}

	if maxFrom.After(minTo) {
		return nil
	}
	return &models.DateRange{From: maxFrom, To: minTo}
}
