package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClubNotResolved means no strategy produced an identifier for a club.
	ErrClubNotResolved = errors.New("could not resolve club")
	// ErrNoRecords means the club resolved but had no players in any season tried.
	ErrNoRecords = errors.New("no records found")
)

// ResolutionError names the club that could not be resolved.
type ResolutionError struct {
	Club string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve club %q", e.Club)
}

func (e *ResolutionError) Unwrap() error { return ErrClubNotResolved }

// EmptyResultError names the club and every season that came back empty.
type EmptyResultError struct {
	Club    string
	ClubID  int
	Seasons []int
}

func (e *EmptyResultError) Error() string {
	seasons := make([]string, len(e.Seasons))
	for i, s := range e.Seasons {
		seasons[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("no players found for %s (team %d) in any configured season [%s]",
		e.Club, e.ClubID, strings.Join(seasons, ", "))
}

func (e *EmptyResultError) Unwrap() error { return ErrNoRecords }
