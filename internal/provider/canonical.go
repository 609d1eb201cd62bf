// Package provider defines canonical data types that the API-Football handlers
// normalize into. These structs are the contract between the provider layer
// and the game pipeline; nothing above the provider sees raw upstream JSON.
package provider

// Team is a club as listed in a league roster.
type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Country string `json:"country,omitempty"`
	Venue   string `json:"venue,omitempty"`
}

// Player is a squad member for one club in one season.
// Season is always the season the roster was queried for.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age"`
	Nationality string `json:"nationality,omitempty"`
	Position    string `json:"position,omitempty"`
	TeamID      int    `json:"team_id"`
	Season      int    `json:"season"`
}

// League is a resolved league identifier. ID is nil when the name could not
// be resolved upstream.
type League struct {
	Name    string `json:"name"`
	ID      *int   `json:"id"`
	Current bool   `json:"-"`
}

// LeagueMembership records the league a club was found in for a season.
type LeagueMembership struct {
	LeagueID   int    `json:"league_id"`
	LeagueName string `json:"league_name"`
}

// TeamRef is a club identifier resolved from a name search.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
