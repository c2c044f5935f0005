package core

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/iocache"
	"github.com/codescout/codescout/schema"
)

// ErrUnknownProblem means a toggle named a problem that is not on the sheet.
var ErrUnknownProblem = errors.New("unknown problem id")

// GetSolvedProblems returns the user's solved-problem set. The set persists
// across days; the day-bounded freshness check does not apply here.
func GetSolvedProblems(mgr contract.StoreManager, userID string) (map[string]struct{}, error) {
	store := mgr.GetCacheStore()
	solved := make(map[string]struct{})
	if store == nil {
		return solved, nil
	}

	key := iocache.UserKey(iocache.KeySolvedProblems, userID)
	data, _, _, err := store.Get(key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return solved, nil
		}
		return nil, fmt.Errorf("cannot read solved problems: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// A corrupt entry resets the checklist rather than wedging it
		return solved, nil
	}
	for _, id := range ids {
		solved[id] = struct{}{}
	}
	return solved, nil
}

// ToggleProblem flips a problem's solved state and persists the set.
// Returns the new state: true when the problem is now marked solved.
func ToggleProblem(mgr contract.StoreManager, userID, problemID string, now time.Time) (bool, error) {
	if _, ok := FindProblem(problemID); !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownProblem, problemID)
	}

	solved, err := GetSolvedProblems(mgr, userID)
	if err != nil {
		return false, err
	}

	_, wasSolved := solved[problemID]
	if wasSolved {
		delete(solved, problemID)
	} else {
		solved[problemID] = struct{}{}
	}

	store := mgr.GetCacheStore()
	if store == nil {
		return !wasSolved, nil
	}

	ids := make([]string, 0, len(solved))
	for id := range solved {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return false, fmt.Errorf("cannot encode solved problems: %w", err)
	}

	key := iocache.UserKey(iocache.KeySolvedProblems, userID)
	if err := store.Set(key, data, iocache.CurrentCacheVersion, now.Unix()); err != nil {
		return false, fmt.Errorf("cannot persist solved problems: %w", err)
	}
	return !wasSolved, nil
}

// LadderProgress summarizes one rating ladder against the solved set.
type LadderProgress struct {
	Rating int
	Solved int
	Total  int
}

// ProgressByLadder reports per-ladder solve counts in rating order.
func ProgressByLadder(solved map[string]struct{}) []LadderProgress {
	progress := make([]LadderProgress, 0, len(ratingLadders))
	for _, ladder := range ratingLadders {
		p := LadderProgress{Rating: ladder.Rating, Total: len(ladder.Problems)}
		for _, problem := range ladder.Problems {
			if _, ok := solved[problem.ID]; ok {
				p.Solved++
			}
		}
		progress = append(progress, p)
	}
	return progress
}

// Ladders returns the practice sheet, grouped by target rating ascending.
func Ladders() []schema.Ladder {
	return ratingLadders
}

// FindProblem looks a problem up by its sheet ID.
func FindProblem(id string) (schema.Problem, bool) {
	for _, ladder := range ratingLadders {
		for _, problem := range ladder.Problems {
			if problem.ID == id {
				return problem, true
			}
		}
	}
	return schema.Problem{}, false
}
