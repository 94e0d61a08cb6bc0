package hemesh

// directedEdge is an ordered (origin, destination) vertex pair.
type directedEdge [2]VertexIndex

func (d directedEdge) reversed() directedEdge {
	return directedEdge{d[1], d[0]}
}

// edgeIndex maps every directed edge to the half-edge created for it.
// It only lives for the duration of a build.
type edgeIndex struct {
	edges map[directedEdge]EdgeIndex
}

func newEdgeIndex(capacity int) *edgeIndex {
	return &edgeIndex{edges: make(map[directedEdge]EdgeIndex, capacity)}
}

// insert records e as the half-edge going from origin to destination.
// A direction can only be registered once; a second registration means the
// input is non-manifold or inconsistently wound.
func (ix *edgeIndex) insert(origin, destination VertexIndex, e EdgeIndex) *NonManifoldError {
	key := directedEdge{origin, destination}
	if existing, found := ix.edges[key]; found {
		return &NonManifoldError{
			Origin:      origin,
			Destination: destination,
			Face:        NoFace,
			Existing:    existing,
		}
	}
	ix.edges[key] = e
	return nil
}

func (ix *edgeIndex) len() int {
	return len(ix.edges)
}

// resolvePairs links every unpaired half-edge with the half-edge registered
// for the reverse direction, setting both sides at once. Half-edges whose
// reverse does not exist stay unpaired and form the mesh boundary.
// Every half-edge must already have next set. It returns the number of
// pairs linked.
func (ix *edgeIndex) resolvePairs(edges []HalfEdge) int {
	linked := 0
	for i := range edges {
		e := &edges[i]
		if e.pair.Valid() {
			continue
		}
		key := directedEdge{e.origin, edges[e.next].origin}
		opposite, found := ix.edges[key.reversed()]
		if !found || opposite == EdgeIndex(i) {
			continue
		}
		e.pair = opposite
		edges[opposite].pair = EdgeIndex(i)
		linked++
	}
	return linked
}
