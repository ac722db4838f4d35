package optimizer

import (
	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/spatial"
)

// allocState is the allocator's lifecycle state
type allocState int

const (
	stateInitialized allocState = iota
	stateIterating
	stateDone      // budget below cheapest type, or no sites left
	stateExhausted // no affordable pair adds coverage
)

// allocator runs the greedy budget allocation over candidate sites. Each
// iteration it picks the (site, facility type) pair with the best marginal
// population per unit cost, commits it, and recomputes; a site is selected
// at most once.
type allocator struct {
	catalog   models.FacilityTypeCatalog
	typeNames []string // lexicographic, fixes tie-break order
	minCost   float64

	budget    float64
	remaining float64

	sites       []models.CandidateSite
	active      []bool
	underserved []models.PopulationPoint
	byID        map[string]models.PopulationPoint

	covered    map[string]bool // population point IDs covered by committed placements
	placements []models.Placement
	state      allocState
}

// candidate is one (site, type) pair under evaluation
type candidate struct {
	site       int
	typeName   string
	cost       float64
	radius     float64
	gain       int
	efficiency float64
}

func newAllocator(sites []models.CandidateSite, underserved []models.PopulationPoint, catalog models.FacilityTypeCatalog, budget float64) *allocator {
	byID := make(map[string]models.PopulationPoint, len(underserved))
	for _, p := range underserved {
		byID[p.ID] = p
	}
	return &allocator{
		catalog:     catalog,
		typeNames:   catalog.TypeNames(),
		minCost:     catalog.MinCost(),
		budget:      budget,
		remaining:   budget,
		sites:       sites,
		active:      activeFlags(len(sites)),
		underserved: underserved,
		byID:        byID,
		covered:     make(map[string]bool),
		state:       stateInitialized,
	}
}

func activeFlags(n int) []bool {
	flags := make([]bool, n)
	for i := range flags {
		flags[i] = true
	}
	return flags
}

// run drives the state machine to DONE or EXHAUSTED
func (a *allocator) run() {
	a.state = stateIterating
	for {
		if a.remaining < a.minCost || !a.anyActive() {
			a.state = stateDone
			return
		}
		best, ok := a.selectBest()
		if !ok {
			a.state = stateExhausted
			return
		}
		a.commit(best)
	}
}

func (a *allocator) anyActive() bool {
	for _, on := range a.active {
		if on {
			return true
		}
	}
	return false
}

// selectBest scans every active site against every affordable facility type
// and returns the pair with maximum efficiency. Ties break by lower cost,
// then lower site index, then lexicographically first type name; the last
// two fall out of the scan order, which keeps the first candidate on exact
// ties.
func (a *allocator) selectBest() (candidate, bool) {
	var best candidate
	found := false

	for si := range a.sites {
		if !a.active[si] {
			continue
		}
		for _, name := range a.typeNames {
			spec := a.catalog[name]
			if spec.Cost > a.remaining {
				continue
			}
			gain := a.marginalGain(si, spec.CoverageRadius)
			if gain <= 0 {
				continue
			}
			cand := candidate{
				site:       si,
				typeName:   name,
				cost:       spec.Cost,
				radius:     spec.CoverageRadius,
				gain:       gain,
				efficiency: float64(gain) / spec.Cost,
			}
			if !found || better(cand, best) {
				best = cand
				found = true
			}
		}
	}
	return best, found
}

// better reports whether x strictly beats the incumbent y
func better(x, y candidate) bool {
	if x.efficiency != y.efficiency {
		return x.efficiency > y.efficiency
	}
	return x.cost < y.cost
}

// marginalGain is the population of the site's member points not yet
// covered and within the given radius of the site centroid. It is
// recomputed live each iteration: an earlier placement whose radius reaches
// into this cluster shrinks the gain.
func (a *allocator) marginalGain(si int, radius float64) int {
	site := a.sites[si]
	gain := 0
	for _, id := range site.MemberIDs {
		if a.covered[id] {
			continue
		}
		p, ok := a.byID[id]
		if !ok {
			continue
		}
		d := spatial.HaversineDistance(site.Latitude, site.Longitude, p.Latitude, p.Longitude)
		if d <= radius {
			gain += p.PopulationCount
		}
	}
	return gain
}

// commit appends the placement, spends its cost, marks every underserved
// point within its radius as covered (members or not) and retires the site.
// The placement reports the full newly covered population so that placement
// sums equal the deduplicated coverage total.
func (a *allocator) commit(c candidate) {
	site := a.sites[c.site]

	newlyCovered := 0
	for _, p := range a.underserved {
		if a.covered[p.ID] {
			continue
		}
		d := spatial.HaversineDistance(site.Latitude, site.Longitude, p.Latitude, p.Longitude)
		if d <= c.radius {
			a.covered[p.ID] = true
			newlyCovered += p.PopulationCount
		}
	}

	a.placements = append(a.placements, models.Placement{
		Latitude:          site.Latitude,
		Longitude:         site.Longitude,
		FacilityType:      c.typeName,
		EstimatedCost:     c.cost,
		PopulationCovered: newlyCovered,
		CoverageRadiusKm:  c.radius / 1000,
		SubdistrictID:     site.SubdistrictID,
	})
	a.remaining -= c.cost
	a.active[c.site] = false
}

// budgetUsed is the total cost of committed placements
func (a *allocator) budgetUsed() float64 {
	return a.budget - a.remaining
}

// newlyCoveredPopulation sums the population of every point covered by
// committed placements, deduplicated through the covered set
func (a *allocator) newlyCoveredPopulation() int {
	total := 0
	for _, p := range a.underserved {
		if a.covered[p.ID] {
			total += p.PopulationCount
		}
	}
	return total
}
