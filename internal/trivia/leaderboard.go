package trivia

import "sort"

// Standing is one row of the leaderboard.
type Standing struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
	Leader bool   `json:"leader"`
}

// Leaderboard orders players by score, highest first. Players with equal
// scores keep their roster order.
func Leaderboard(players []Player) []Standing {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	standings := make([]Standing, len(sorted))
	for i, p := range sorted {
		standings[i] = Standing{
			Rank:   i + 1,
			Player: p,
			Leader: i == 0,
		}
	}
	return standings
}

// Winner is the first player on the leaderboard.
func Winner(players []Player) (Player, bool) {
	standings := Leaderboard(players)
	if len(standings) == 0 {
		return Player{}, false
	}
	return standings[0].Player, true
}
