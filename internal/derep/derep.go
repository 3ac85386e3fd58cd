// Package derep removes near-duplicate assemblies from a set by repeatedly
// discarding the lower-quality member of the closest surviving pair.
package derep

import (
	"errors"
	"sort"
)

// QualityFunc returns the N50 of the assembly at the given path. Callers
// pass a memoized implementation (see internal/stats) because computing an
// N50 means reading and parsing the whole assembly file.
type QualityFunc func(path string) (int, error)

// Event is one discard decision, for verbose reporting.
type Event struct {
	// the Mash distance of the pair that triggered the discard
	Distance float64

	// the assembly removed from the surviving set
	Discarded string

	// the other member of the pair, which survives this step
	Kept string

	// N50 of the discarded assembly
	DiscardedN50 int

	// N50 of the kept assembly
	KeptN50 int
}

// Dereplicate runs closest-pair greedy elimination over the assemblies and
// returns the sorted surviving subset plus the ordered discard trace.
//
// The queue must come from BuildQueue: deduplicated, complete and sorted
// with the closest pair first. Records are consumed front to back and never
// revisited. A record whose endpoints are both still alive is the genuine
// closest surviving pair, and its lower-N50 member is discarded; a record
// with an already-discarded endpoint is skipped. Distances are never
// recomputed as the set shrinks.
//
// The stop policy is evaluated before every pop, against the next
// unconsumed record, so a run can end exactly at its boundary without a
// final discard. Given the same inputs the result is fully deterministic:
// distance ties are broken by queue order and quality ties keep the
// pair's first (lexicographically smaller) member.
func Dereplicate(assemblies []string, queue []Record, policy Policy, quality QualityFunc) ([]string, []Event, error) {
	if err := policy.Validate(); err != nil {
		return nil, nil, err
	}
	if len(assemblies) == 0 {
		return nil, nil, errors.New("no assemblies to dereplicate")
	}

	live := make(map[string]bool, len(assemblies))
	for _, a := range assemblies {
		live[a] = true
	}

	// a single assembly is trivially non-redundant
	if len(live) == 1 {
		return survivors(live), nil, nil
	}

	floor := policy.Distance
	ceiling := policy.ceiling(len(live))
	discarded := make(map[string]bool)

	var trace []Event
	for i := range queue {
		next := &queue[i]
		if stop(len(live), next, floor, ceiling) {
			break
		}

		// consumed. if an endpoint was already discarded this record
		// no longer describes a surviving pair
		if discarded[next.A] || discarded[next.B] {
			continue
		}

		qa, err := quality(next.A)
		if err != nil {
			return nil, nil, err
		}
		qb, err := quality(next.B)
		if err != nil {
			return nil, nil, err
		}

		// keep the higher N50. on a tie keep A, the pair's first member
		drop, keep, dropN50, keepN50 := next.B, next.A, qb, qa
		if qa < qb {
			drop, keep, dropN50, keepN50 = next.A, next.B, qa, qb
		}

		delete(live, drop)
		discarded[drop] = true
		trace = append(trace, Event{
			Distance:     next.Distance,
			Discarded:    drop,
			Kept:         keep,
			DiscardedN50: dropN50,
			KeptN50:      keepN50,
		})
	}

	return survivors(live), trace, nil
}

func survivors(live map[string]bool) []string {
	out := make([]string, 0, len(live))
	for a := range live {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
