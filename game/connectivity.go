package game

// IsFullyConnected reports whether pieces form a single cluster under
// 8-neighbour adjacency. Empty and single-piece sets are connected.
func IsFullyConnected(b *Board, pieces []Piece) bool {
	if len(pieces) <= 1 {
		return true
	}
	members := make(map[PieceRef]bool, len(pieces))
	for _, p := range pieces {
		members[p.Ref] = true
	}
	return len(cluster(b, pieces[0], pieces, members)) == len(members)
}

// LargestConnectedSubset partitions pieces into clusters and returns the
// biggest one. Ties go to the cluster discovered first, and the returned slice
// starts with the piece the search was seeded from.
func LargestConnectedSubset(b *Board, pieces []Piece) []Piece {
	remaining := make(map[PieceRef]bool, len(pieces))
	for _, p := range pieces {
		remaining[p.Ref] = true
	}

	var largest []Piece
	for _, seed := range pieces {
		if !remaining[seed.Ref] {
			continue
		}
		component := cluster(b, seed, pieces, remaining)
		for _, p := range component {
			delete(remaining, p.Ref)
		}
		if len(component) > len(largest) {
			largest = component
		}
	}
	return largest
}

// Just BFS
func cluster(b *Board, seed Piece, pieces []Piece, members map[PieceRef]bool) []Piece {
	byRef := make(map[PieceRef]Piece, len(pieces))
	for _, p := range pieces {
		byRef[p.Ref] = p
	}

	visited := map[PieceRef]bool{seed.Ref: true}
	component := []Piece{seed}
	queue := []Piece{seed}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, ref := range b.Neighbors8(current.Pos, members) {
			if visited[ref] {
				continue
			}
			visited[ref] = true
			next := byRef[ref]
			component = append(component, next)
			queue = append(queue, next)
		}
	}
	return component
}
