package rating

import (
	"sort"

	glicko "github.com/zelenin/go-glicko2"
)

const (
	initialElo    = 1000
	initialGlicko = 1500
	initialRD     = 350
	initialSigma  = 0.06
)

// Result is a finished match: Winner beat every other player in Players.
type Result struct {
	Players []string
	Winner  string
}

type PlayerRating struct {
	Player      string  `json:"player"`
	Elo         int     `json:"elo"`
	Glicko      float64 `json:"glicko"`
	GlickoRD    float64 `json:"glickoRd"`
	GamesPlayed int     `json:"gamesPlayed"`
	Wins        int     `json:"wins"`
}

// Calculate replays results in order. Each result is its own Glicko-2 rating
// period; Elo changes are taken pairwise from the ratings before the match.
// Results without a winner are skipped. The slice is ordered by Elo, best first.
func Calculate(results []Result) []PlayerRating {
	ratings := make(map[string]*PlayerRating)
	glickoPlayers := make(map[string]*glicko.Player)
	get := func(name string) *PlayerRating {
		r, ok := ratings[name]
		if !ok {
			r = &PlayerRating{Player: name, Elo: initialElo}
			ratings[name] = r
			glickoPlayers[name] = glicko.NewPlayer(glicko.NewRating(initialGlicko, initialRD, initialSigma))
		}
		return r
	}

	for _, result := range results {
		if result.Winner == "" || len(result.Players) < 2 {
			continue
		}
		winner := get(result.Winner)
		before := make(map[string]int, len(result.Players))
		for _, name := range result.Players {
			before[name] = get(name).Elo
		}

		period := glicko.NewRatingPeriod()
		for _, name := range result.Players {
			if name == result.Winner {
				continue
			}
			loser := ratings[name]
			kWinner := Coefficient(winner.GamesPlayed, before[result.Winner])
			kLoser := Coefficient(loser.GamesPlayed, before[name])
			winner.Elo += Elo(before[result.Winner], before[name], kWinner, Win) - before[result.Winner]
			loser.Elo = Elo(before[name], before[result.Winner], kLoser, Lose)
			period.AddMatch(glickoPlayers[result.Winner], glickoPlayers[name], glicko.MATCH_RESULT_WIN)
		}
		period.Calculate()

		for _, name := range result.Players {
			ratings[name].GamesPlayed++
		}
		winner.Wins++
	}

	out := make([]PlayerRating, 0, len(ratings))
	for name, r := range ratings {
		rating := glickoPlayers[name].Rating()
		r.Glicko = rating.R()
		r.GlickoRD = rating.Rd()
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Elo != out[j].Elo {
			return out[i].Elo > out[j].Elo
		}
		return out[i].Player < out[j].Player
	})
	return out
}
