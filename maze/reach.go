package maze

// Reachable computes the set of positions reachable from `from` by orthogonal
// moves through non-Wall tiles, using an unordered flood fill. Wall tiles
// block traversal unconditionally; teleport tiles are treated as ordinary
// floor here, since the pair jump never makes an otherwise-unreachable cell
// reachable in a generated maze.
//
// Each reachable cell is visited exactly once. Starting on a Wall yields an
// empty set.
func Reachable(g *Grid, from Position) map[Position]struct{} {
	visited := make(map[Position]struct{})
	if g.At(from) == Wall {
		return visited
	}

	stack := []Position{from}
	visited[from] = struct{}{}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range Directions {
			next := cell.Add(d)
			if !g.InBounds(next) || g.At(next) == Wall {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}

	return visited
}

// HopDistances computes the unweighted breadth-first hop distance from `from`
// to every reachable cell, together with the order in which cells were first
// reached. The expansion follows the fixed direction list, so both the
// distances and the order are deterministic for a given grid; callers use the
// order to break ties among equally distant cells.
func HopDistances(g *Grid, from Position) (map[Position]int, []Position) {
	distances := make(map[Position]int)
	var order []Position
	if g.At(from) == Wall {
		return distances, order
	}

	queue := []Position{from}
	distances[from] = 0
	order = append(order, from)
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			next := cell.Add(d)
			if !g.InBounds(next) || g.At(next) == Wall {
				continue
			}
			if _, seen := distances[next]; seen {
				continue
			}
			distances[next] = distances[cell] + 1
			order = append(order, next)
			queue = append(queue, next)
		}
	}

	return distances, order
}
