package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tol                    float64
	}{
		{"same point", -6.4815, 106.8540, -6.4815, 106.8540, 0, 0.001},
		{"jakarta to bogor", -6.2088, 106.8456, -6.5971, 106.8060, 43300, 500},
		{"one degree latitude", 0, 0, 1, 0, 111195, 50},
		{"equatorial degree longitude", 0, 0, 0, 1, 111195, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("HaversineDistance() = %.1f, want %.1f ± %.1f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	d1 := HaversineDistance(-6.4815, 106.8540, -6.4233, 106.9073)
	d2 := HaversineDistance(-6.4233, 106.9073, -6.4815, 106.8540)
	if d1 != d2 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	// Walking out N meters and measuring back should recover N
	for _, dist := range []float64{500, 3000, 5000, 10000} {
		lat, lon := DestinationPoint(-6.48, 106.85, 45, dist)
		got := HaversineDistance(-6.48, 106.85, lat, lon)
		if math.Abs(got-dist) > 1.0 {
			t.Errorf("round trip at %v m: got %.2f m", dist, got)
		}
	}
}
