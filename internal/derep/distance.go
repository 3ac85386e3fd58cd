package derep

import (
	"fmt"
	"sort"
)

// Record is one pairwise Mash distance between two assemblies.
// In a queue built by BuildQueue, A sorts before B.
type Record struct {
	// the Mash distance between the two assemblies, in [0, 1]
	Distance float64

	// path of the first assembly in the pair
	A string

	// path of the second assembly in the pair
	B string
}

// BuildQueue turns raw pairwise distances, as parsed from mash output, into
// the queue consumed by Dereplicate: endpoint order normalized, self-pairs
// dropped, symmetric duplicates collapsed, sorted with the closest pair first.
//
// mash dist run against a single sketch reports every ordered pair, so each
// unordered pair arrives twice plus one self-pair per assembly. After
// normalization every distinct pair must be present exactly once. A missing
// pair means the distance run was incomplete and the whole run is invalid,
// since the engine's closest-pair order would be wrong.
func BuildQueue(raw []Record, assemblies []string) ([]Record, error) {
	known := make(map[string]bool, len(assemblies))
	for _, a := range assemblies {
		known[a] = true
	}

	type pair struct {
		a, b string
	}
	seen := make(map[pair]bool)
	connections := make(map[string]int)

	var queue []Record
	for _, r := range raw {
		if r.A == r.B {
			continue
		}

		a, b := r.A, r.B
		if b < a {
			a, b = b, a
		}

		if !known[a] {
			return nil, fmt.Errorf("unknown assembly %q in distance output", a)
		}
		if !known[b] {
			return nil, fmt.Errorf("unknown assembly %q in distance output", b)
		}

		if seen[pair{a, b}] {
			continue
		}
		seen[pair{a, b}] = true

		connections[a]++
		connections[b]++
		queue = append(queue, Record{Distance: r.Distance, A: a, B: b})
	}

	// every assembly needs a distance to every other assembly
	for _, a := range assemblies {
		if connections[a] != len(assemblies)-1 {
			return nil, fmt.Errorf(
				"incomplete distance set: %s has %d of %d pairwise distances",
				a, connections[a], len(assemblies)-1,
			)
		}
	}

	// closest pair first. ties broken by the pair's paths so the
	// queue order, and with it the whole run, is deterministic
	sort.Slice(queue, func(i, j int) bool {
		if queue[i].Distance != queue[j].Distance {
			return queue[i].Distance < queue[j].Distance
		}
		if queue[i].A != queue[j].A {
			return queue[i].A < queue[j].A
		}
		return queue[i].B < queue[j].B
	})

	return queue, nil
}
