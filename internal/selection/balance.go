package selection

import (
	"sort"

	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/types"
)

const (
	// DefaultZoneSize is the number of careers emitted per zone.
	DefaultZoneSize = 3
	// neutralExploration is the exploration level at which ordering is by score alone.
	neutralExploration = 3
	// explorationStep is the ordering bias, in score points, per exploration level.
	explorationStep = 5
)

// Candidate is a scored career with its zone labels.
type Candidate struct {
	ranking.ScoredCareer
	Zone         types.Zone
	OriginalZone types.Zone // Set when the career was promoted from another zone
}

// Options controls balanced selection.
type Options struct {
	ZoneSize         int
	ExplorationLevel int
	// Anchor, when set, marks careers of which at least one should be selected if any is
	// available. It is used to guarantee a career matching the dominant resume theme.
	Anchor func(ranking.ScoredCareer) bool
}

// Result is the balanced selection.
type Result struct {
	Selected     []Candidate // Flat output order
	ByZone       map[types.Zone][]Candidate
	PoolSizes    map[types.Zone]int // Candidates per zone before redistribution
	Insufficient bool               // Fewer than 3 x ZoneSize candidates were available
}

// Select zones scored careers and emits up to ZoneSize per zone, back-filling short zones
// from their nearest neighbours. Scores are never changed.
func Select(scored []ranking.ScoredCareer, pos Position, opts Options) (*Result, error) {
	if opts.ZoneSize < 1 {
		return nil, &Error{Message: "zone size must be at least 1"}
	}
	n := opts.ZoneSize

	pools := make(map[types.Zone][]Candidate, len(types.Zones))
	for _, sc := range scored {
		z := pos.Assign(sc.Career)
		pools[z] = append(pools[z], Candidate{ScoredCareer: sc, Zone: z})
	}

	res := &Result{
		ByZone:       make(map[types.Zone][]Candidate, len(types.Zones)),
		PoolSizes:    make(map[types.Zone]int, len(types.Zones)),
		Insufficient: len(scored) < len(types.Zones)*n,
	}
	leftovers := make(map[types.Zone][]Candidate, len(types.Zones))
	for _, z := range types.Zones {
		pool := pools[z]
		sortCandidates(pool)
		res.PoolSizes[z] = len(pool)
		take := min(n, len(pool))
		res.ByZone[z] = append([]Candidate(nil), pool[:take]...)
		leftovers[z] = pool[take:]
	}

	redistribute(res.ByZone, leftovers, n, opts.ExplorationLevel)
	if opts.Anchor != nil {
		anchor(res.ByZone, leftovers, opts.Anchor)
	}

	for _, z := range types.Zones {
		sortCandidates(res.ByZone[z])
		res.Selected = append(res.Selected, res.ByZone[z]...)
	}
	orderByExploration(res.Selected, opts.ExplorationLevel)
	return res, nil
}

// donors lists, nearest first, the zones a short zone borrows from. Exploration decides
// which neighbour a stretch zone prefers.
func donors(z types.Zone, exploration int) []types.Zone {
	switch z {
	case types.ZoneSafe:
		return []types.Zone{types.ZoneStretch, types.ZoneAdventure}
	case types.ZoneAdventure:
		return []types.Zone{types.ZoneStretch, types.ZoneSafe}
	default:
		if exploration > neutralExploration {
			return []types.Zone{types.ZoneAdventure, types.ZoneSafe}
		}
		return []types.Zone{types.ZoneSafe, types.ZoneAdventure}
	}
}

func redistribute(byZone, leftovers map[types.Zone][]Candidate, n, exploration int) {
	for _, z := range types.Zones {
		for _, donor := range donors(z, exploration) {
			for len(byZone[z]) < n && len(leftovers[donor]) > 0 {
				c := leftovers[donor][0]
				leftovers[donor] = leftovers[donor][1:]
				c.OriginalZone = c.Zone
				c.Zone = z
				byZone[z] = append(byZone[z], c)
			}
		}
	}
}

// anchor swaps the best unselected anchored career into its own zone, replacing that
// zone's lowest-ranked career, when nothing selected is anchored.
func anchor(byZone, leftovers map[types.Zone][]Candidate, isAnchor func(ranking.ScoredCareer) bool) {
	for _, z := range types.Zones {
		for _, c := range byZone[z] {
			if isAnchor(c.ScoredCareer) {
				return
			}
		}
	}

	var best *Candidate
	for _, z := range types.Zones {
		for i := range leftovers[z] {
			c := &leftovers[z][i]
			if isAnchor(c.ScoredCareer) && (best == nil || ranking.Less(c.ScoredCareer, best.ScoredCareer)) {
				best = c
			}
		}
	}
	if best == nil {
		return
	}

	zone := byZone[best.Zone]
	sortCandidates(zone)
	// A zone with leftovers kept its own top picks, so it is full.
	zone[len(zone)-1] = *best
}

func sortCandidates(cs []Candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		return ranking.Less(cs[i].ScoredCareer, cs[j].ScoredCareer)
	})
}

// orderByExploration orders the flat output by score plus a zone bias: positive exploration
// lifts adventure and lowers safe. Ties keep zone order, then ranking order.
func orderByExploration(cs []Candidate, exploration int) {
	zoneIndex := map[types.Zone]int{}
	for i, z := range types.Zones {
		zoneIndex[z] = i
	}
	bias := func(z types.Zone) int {
		shift := (exploration - neutralExploration) * explorationStep
		switch z {
		case types.ZoneSafe:
			return -shift
		case types.ZoneAdventure:
			return shift
		default:
			return 0
		}
	}
	sort.SliceStable(cs, func(i, j int) bool {
		pi, pj := cs[i].Score+bias(cs[i].Zone), cs[j].Score+bias(cs[j].Zone)
		if pi != pj {
			return pi > pj
		}
		if cs[i].Zone != cs[j].Zone {
			return zoneIndex[cs[i].Zone] < zoneIndex[cs[j].Zone]
		}
		return ranking.Less(cs[i].ScoredCareer, cs[j].ScoredCareer)
	})
}
