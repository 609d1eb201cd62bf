// Package football holds the hand-maintained league and club registry used by
// the game pipeline. Everything here is read-only at run time.
package football

import "strings"

// --------------------------------------------------------------------------
// Top-5 leagues: display names as API-Football lists them
// --------------------------------------------------------------------------

var TopLeagueNames = []string{
	"Premier League",
	"La Liga",
	"Serie A",
	"Bundesliga",
	"Ligue 1",
}

// --------------------------------------------------------------------------
// Club pools
// --------------------------------------------------------------------------

// CensusPool is the pool the census draws its random club from.
var CensusPool = []string{
	"Manchester City", "Arsenal", "Liverpool", "Chelsea", "Manchester United", "Tottenham",
	"Real Madrid", "Barcelona", "Atletico Madrid", "Sevilla", "Valencia",
	"Inter", "AC Milan", "Juventus", "Napoli", "Roma", "Lazio",
	"Bayern Munich", "Borussia Dortmund", "RB Leipzig", "Bayer Leverkusen",
	"Paris Saint Germain", "Monaco", "Marseille", "Lyon", "Lille",
}

// FamousClubs is the pool the guessing game picks a player's club from.
var FamousClubs = []string{
	"Manchester City", "Arsenal", "Liverpool", "Chelsea", "Manchester United",
	"Real Madrid", "Barcelona", "Atletico Madrid",
	"Inter", "AC Milan", "Juventus", "Napoli",
	"Bayern Munich", "Borussia Dortmund", "Bayer Leverkusen",
	"Paris Saint Germain",
}

// --------------------------------------------------------------------------
// Static club IDs: API-Football team identifiers for the major clubs
// --------------------------------------------------------------------------

var staticClubIDs = map[string]int{
	"manchester city":     50,
	"arsenal":             42,
	"liverpool":           40,
	"chelsea":             49,
	"manchester united":   33,
	"tottenham":           47,
	"real madrid":         541,
	"barcelona":           529,
	"atletico madrid":     530,
	"sevilla":             536,
	"valencia":            532,
	"inter":               505,
	"ac milan":            489,
	"juventus":            496,
	"napoli":              492,
	"roma":                497,
	"lazio":               487,
	"bayern munich":       157,
	"borussia dortmund":   165,
	"rb leipzig":          173,
	"bayer leverkusen":    168,
	"paris saint germain": 85,
	"monaco":              91,
	"marseille":           81,
	"lyon":                80,
	"lille":               79,
}

// NormalizeName lowercases and trims a club name for table lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// StaticClubs returns a copy of the static club table keyed by normalized name.
func StaticClubs() map[string]int {
	out := make(map[string]int, len(staticClubIDs))
	for k, v := range staticClubIDs {
		out[k] = v
	}
	return out
}
