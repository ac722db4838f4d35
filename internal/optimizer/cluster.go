package optimizer

import (
	"math"
	"math/rand"
	"sort"

	"github.com/sehatmap/planner-backend-go/internal/models"
)

// maxKMeansIterations bounds the Lloyd loop; convergence is usually far
// earlier at the cluster counts used here
const maxKMeansIterations = 100

// ClusterUnderserved groups underserved population points into at most
// maxClusters candidate sites using population-weighted k-means on raw
// coordinates. The seed fixes centroid initialization so that identical
// input always yields identical sites; candidate order is cluster index
// order and is part of the allocator's tie-breaking contract.
func ClusterUnderserved(points []models.PopulationPoint, maxClusters int, seed int64) []models.CandidateSite {
	if len(points) == 0 {
		return nil
	}

	k := maxClusters
	if k > len(points) {
		k = len(points)
	}
	if k < 1 {
		k = 1
	}

	centroids := initialCentroids(points, k, rand.New(rand.NewSource(seed)))
	assign := make([]int, len(points))

	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, p := range points {
			if c := nearestCentroid(p, centroids); c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}
		recomputeCentroids(points, assign, centroids)
	}

	return buildSites(points, assign, centroids)
}

// initialCentroids seeds k centroids k-means++ style: the first is a random
// point, each further one is drawn proportionally to squared distance from
// the nearest centroid chosen so far.
func initialCentroids(points []models.PopulationPoint, k int, rnd *rand.Rand) [][2]float64 {
	centroids := make([][2]float64, 0, k)
	first := points[rnd.Intn(len(points))]
	centroids = append(centroids, [2]float64{first.Latitude, first.Longitude})

	dist2 := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d2 := math.Inf(1)
			for _, c := range centroids {
				if d := sqDist(p.Latitude, p.Longitude, c[0], c[1]); d < d2 {
					d2 = d
				}
			}
			dist2[i] = d2
			total += d2
		}

		next := 0
		if total > 0 {
			r := rnd.Float64() * total
			acc := 0.0
			for i, d2 := range dist2 {
				acc += d2
				if acc >= r {
					next = i
					break
				}
			}
		} else {
			// all remaining points coincide with a centroid
			next = rnd.Intn(len(points))
		}
		p := points[next]
		centroids = append(centroids, [2]float64{p.Latitude, p.Longitude})
	}
	return centroids
}

// nearestCentroid returns the index of the closest centroid, lowest index
// winning ties
func nearestCentroid(p models.PopulationPoint, centroids [][2]float64) int {
	best := 0
	bestD := math.Inf(1)
	for i, c := range centroids {
		if d := sqDist(p.Latitude, p.Longitude, c[0], c[1]); d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// recomputeCentroids moves each centroid to the population-weighted mean of
// its members. An emptied cluster is reseeded to the point farthest from
// its current centroid, keeping the cluster count stable.
func recomputeCentroids(points []models.PopulationPoint, assign []int, centroids [][2]float64) {
	k := len(centroids)
	sumLat := make([]float64, k)
	sumLon := make([]float64, k)
	sumW := make([]float64, k)
	count := make([]int, k)

	for i, p := range points {
		c := assign[i]
		w := float64(p.PopulationCount)
		if w <= 0 {
			w = 1
		}
		sumLat[c] += p.Latitude * w
		sumLon[c] += p.Longitude * w
		sumW[c] += w
		count[c]++
	}

	for c := 0; c < k; c++ {
		if count[c] == 0 {
			centroids[c] = farthestPoint(points, assign, centroids)
			continue
		}
		centroids[c] = [2]float64{sumLat[c] / sumW[c], sumLon[c] / sumW[c]}
	}
}

func farthestPoint(points []models.PopulationPoint, assign []int, centroids [][2]float64) [2]float64 {
	best := 0
	bestD := -1.0
	for i, p := range points {
		c := centroids[assign[i]]
		if d := sqDist(p.Latitude, p.Longitude, c[0], c[1]); d > bestD {
			bestD = d
			best = i
		}
	}
	return [2]float64{points[best].Latitude, points[best].Longitude}
}

// buildSites materializes candidate sites in cluster index order, dropping
// clusters that ended up empty
func buildSites(points []models.PopulationPoint, assign []int, centroids [][2]float64) []models.CandidateSite {
	sites := make([]models.CandidateSite, 0, len(centroids))
	for c := range centroids {
		var site models.CandidateSite
		subCounts := make(map[string]int)
		for i, p := range points {
			if assign[i] != c {
				continue
			}
			site.MemberIDs = append(site.MemberIDs, p.ID)
			site.PopulationCount += p.PopulationCount
			if p.SubdistrictID != "" {
				subCounts[p.SubdistrictID]++
			}
		}
		if len(site.MemberIDs) == 0 {
			continue
		}
		site.Latitude = centroids[c][0]
		site.Longitude = centroids[c][1]
		site.SubdistrictID = majoritySubdistrict(subCounts)
		sites = append(sites, site)
	}
	return sites
}

// majoritySubdistrict picks the most common sub-district among cluster
// members; ties resolve to the lexicographically smallest ID
func majoritySubdistrict(counts map[string]int) string {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	best := ""
	bestN := 0
	for _, id := range ids {
		if counts[id] > bestN {
			best = id
			bestN = counts[id]
		}
	}
	return best
}

// sqDist is squared euclidean distance in degree space, sufficient for
// cluster assignment at regency scale
func sqDist(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return dLat*dLat + dLon*dLon
}
