package systems

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/spectaculife/components"
)

// CladeRegistry tracks lineages as ECS entities, one per clade, each
// carrying its identity and running counters. It implements Observer and
// CladeFounder so the update pipeline can feed it directly.
type CladeRegistry struct {
	world    *ecs.World
	mapper   *ecs.Map2[components.Clade, components.CladeStats]
	statsMap *ecs.Map1[components.CladeStats]
	filter   *ecs.Filter2[components.Clade, components.CladeStats]

	entities map[uint32]ecs.Entity
	nextID   uint32
}

// NewCladeRegistry creates an empty registry.
func NewCladeRegistry() *CladeRegistry {
	world := ecs.NewWorld()
	return &CladeRegistry{
		world:    world,
		mapper:   ecs.NewMap2[components.Clade, components.CladeStats](world),
		statsMap: ecs.NewMap1[components.CladeStats](world),
		filter:   ecs.NewFilter2[components.Clade, components.CladeStats](world),
		entities: make(map[uint32]ecs.Entity),
		nextID:   1,
	}
}

// Found registers a new clade descending from parent (0 for none) and
// returns its id.
func (r *CladeRegistry) Found(parent uint32, tick int64) uint32 {
	id := r.nextID
	r.nextID++

	clade := components.Clade{ID: id, FounderTick: tick, ParentID: parent}
	stats := components.CladeStats{}
	r.entities[id] = r.mapper.NewEntity(&clade, &stats)
	return id
}

// CellBorn counts a newborn cell toward its clade.
func (r *CladeRegistry) CellBorn(_ components.Role, clade uint32) {
	if s := r.stats(clade); s != nil {
		s.Alive++
		s.Births++
	}
}

// CellDied counts a death against its clade.
func (r *CladeRegistry) CellDied(_ components.Role, _ components.DeathCause, clade uint32) {
	if s := r.stats(clade); s != nil {
		s.Alive--
		s.Deaths++
	}
}

func (r *CladeRegistry) stats(clade uint32) *components.CladeStats {
	e, ok := r.entities[clade]
	if !ok || !r.world.Alive(e) {
		return nil
	}
	return r.statsMap.Get(e)
}

// Stats returns a copy of a clade's counters.
func (r *CladeRegistry) Stats(clade uint32) (components.CladeStats, bool) {
	s := r.stats(clade)
	if s == nil {
		return components.CladeStats{}, false
	}
	return *s, true
}

// Flush removes extinct clades and returns how many were removed.
func (r *CladeRegistry) Flush() int {
	var extinct []uint32

	query := r.filter.Query()
	for query.Next() {
		clade, stats := query.Get()
		if stats.Alive <= 0 {
			extinct = append(extinct, clade.ID)
		}
	}

	// Query iteration must finish before entities are removed
	for _, id := range extinct {
		r.mapper.Remove(r.entities[id])
		delete(r.entities, id)
	}
	return len(extinct)
}

// ActiveCount returns the number of registered clades.
func (r *CladeRegistry) ActiveCount() int {
	return len(r.entities)
}

// CladeSummary is one row of Largest.
type CladeSummary struct {
	components.Clade
	components.CladeStats
}

// Largest returns up to n clades ordered by living cells, largest first.
func (r *CladeRegistry) Largest(n int) []CladeSummary {
	var out []CladeSummary
	query := r.filter.Query()
	for query.Next() {
		clade, stats := query.Get()
		out = append(out, CladeSummary{Clade: *clade, CladeStats: *stats})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Alive != out[j].Alive {
			return out[i].Alive > out[j].Alive
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
