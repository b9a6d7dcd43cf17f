package geo

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/domain"
)

func center(name string, lat, lng float64) domain.RecyclingCenter {
	return domain.RecyclingCenter{
		ID:       uuid.New(),
		Name:     name,
		Location: domain.GeoPoint{Lat: lat, Lng: lng},
	}
}

func saudiCenters() []domain.RecyclingCenter {
	return []domain.RecyclingCenter{
		center("Riyadh", 24.7136, 46.6753),
		center("Jeddah", 21.5433, 39.1728),
	}
}

func TestFindNearest_Empty(t *testing.T) {
	_, ok := FindNearest(domain.GeoPoint{Lat: 24.7, Lng: 46.6}, nil)
	assert.False(t, ok)

	_, ok = FindNearest(domain.GeoPoint{Lat: 24.7, Lng: 46.6}, []domain.RecyclingCenter{})
	assert.False(t, ok)
}

func TestFindNearest_Riyadh(t *testing.T) {
	centers := saudiCenters()

	m, ok := FindNearest(domain.GeoPoint{Lat: 24.7140, Lng: 46.6760}, centers)
	require.True(t, ok)
	assert.Equal(t, "Riyadh", m.Center.Name)
	assert.Equal(t, centers[0].ID, m.Center.ID)
	assert.Less(t, m.DistanceKM, 0.1)
	assert.Greater(t, Distance(domain.GeoPoint{Lat: 24.7140, Lng: 46.6760}, centers[1].Location), 500.0)
}

func TestFindNearest_Dammam(t *testing.T) {
	centers := append(saudiCenters(), center("Dammam", 26.4207, 50.0888))

	m, ok := FindNearest(domain.GeoPoint{Lat: 26.4215, Lng: 50.0895}, centers)
	require.True(t, ok)
	assert.Equal(t, "Dammam", m.Center.Name)
	assert.Less(t, m.DistanceKM, 0.2)
}

func TestFindNearest_TieGoesToFirst(t *testing.T) {
	point := domain.GeoPoint{Lat: 0, Lng: 0}
	east := center("east", 0, 1)
	west := center("west", 0, -1)
	require.Equal(t, Distance(point, east.Location), Distance(point, west.Location))

	for i := 0; i < 10; i++ {
		m, ok := FindNearest(point, []domain.RecyclingCenter{east, west})
		require.True(t, ok)
		assert.Equal(t, "east", m.Center.Name)

		m, ok = FindNearest(point, []domain.RecyclingCenter{west, east})
		require.True(t, ok)
		assert.Equal(t, "west", m.Center.Name)
	}
}

func TestFindNearest_DuplicateLocationsKeepFirst(t *testing.T) {
	a := center("a", 10, 10)
	b := center("b", 10, 10)

	m, ok := FindNearest(domain.GeoPoint{Lat: 11, Lng: 11}, []domain.RecyclingCenter{a, b})
	require.True(t, ok)
	assert.Equal(t, a.ID, m.Center.ID)
}

func TestFindNearest_Minimality(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(50)
		centers := make([]domain.RecyclingCenter, n)
		for i := range centers {
			p := randomPoint(r)
			centers[i] = center("c", p.Lat, p.Lng)
		}
		q := randomPoint(r)

		m, ok := FindNearest(q, centers)
		require.True(t, ok)
		for _, c := range centers {
			assert.LessOrEqual(t, m.DistanceKM, Distance(q, c.Location))
		}
		assert.Equal(t, Distance(q, m.Center.Location), m.DistanceKM)
	}
}

func TestFindNearest_SkipsNonFiniteCenters(t *testing.T) {
	broken := center("broken", math.NaN(), 46.6)
	infinite := center("infinite", 24.7, math.Inf(-1))
	far := center("far", -33.8688, 151.2093)

	m, ok := FindNearest(domain.GeoPoint{Lat: 24.7, Lng: 46.6}, []domain.RecyclingCenter{broken, infinite, far})
	require.True(t, ok)
	assert.Equal(t, "far", m.Center.Name)

	_, ok = FindNearest(domain.GeoPoint{Lat: 24.7, Lng: 46.6}, []domain.RecyclingCenter{broken, infinite})
	assert.False(t, ok)
}

func TestFindNearest_NonFinitePoint(t *testing.T) {
	_, ok := FindNearest(domain.GeoPoint{Lat: math.NaN(), Lng: 0}, saudiCenters())
	assert.False(t, ok)
}

func TestFindNearest_DoesNotMutateInput(t *testing.T) {
	centers := saudiCenters()
	before := append([]domain.RecyclingCenter(nil), centers...)

	FindNearest(domain.GeoPoint{Lat: 22, Lng: 40}, centers)
	assert.Equal(t, before, centers)
}

func TestFindNearest_Concurrent(t *testing.T) {
	centers := append(saudiCenters(), center("Dammam", 26.4207, 50.0888))
	want := centers[2].ID

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m, ok := FindNearest(domain.GeoPoint{Lat: 26.4215, Lng: 50.0895}, centers)
				if !ok || m.Center.ID != want {
					t.Errorf("unexpected result %+v ok=%v", m, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkFindNearest(b *testing.B) {
	r := rand.New(rand.NewSource(9))
	centers := make([]domain.RecyclingCenter, 200)
	for i := range centers {
		p := randomPoint(r)
		centers[i] = center("c", p.Lat, p.Lng)
	}
	q := randomPoint(r)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindNearest(q, centers)
	}
}
