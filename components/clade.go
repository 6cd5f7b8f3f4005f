package components

// Clade identifies a lineage. Every seeded Stem founds one; offspring inherit it.
type Clade struct {
	ID          uint32
	FounderTick int64
	ParentID    uint32 // clade this one split from, 0 for founders
}

// CladeStats tracks a lineage's population.
type CladeStats struct {
	Alive  int
	Births int
	Deaths int
}
