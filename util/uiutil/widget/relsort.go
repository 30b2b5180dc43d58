package widget

import (
	"github.com/pkg/errors"
)

// Sorts relative layout items such that every item comes after the items it depends on, along one axis. Graph nodes are rebuilt on each sort; only the buffers are reused.
type RelativeLayoutItemSorter struct {
	nodes []relSortNode
	queue []int
}

type relSortNode struct {
	succs []int // dependents (indexes)
	indeg int
}

// Returns the items indexes in dependency order. On a dependency cycle, returns the partial order and an error wrapping ErrDependencyCycle that names the items left.
func (s *RelativeLayoutItemSorter) Sort(items []*RelativeLayoutItem, filter *RelConstraintFilter) ([]int, error) {
	n := len(items)

	// reset nodes
	if cap(s.nodes) < n {
		s.nodes = make([]relSortNode, n)
	}
	s.nodes = s.nodes[:n]
	for i := range s.nodes {
		s.nodes[i].succs = s.nodes[i].succs[:0]
		s.nodes[i].indeg = 0
	}

	index := make(map[ElementId]int, n)
	for i, it := range items {
		index[it.id] = i
	}

	// edges: dependency -> dependent
	for i, it := range items {
		for _, k := range filter {
			id := it.constraints.ids[k]
			if id <= IdNoDependency || id == it.id {
				continue
			}
			j, ok := index[id]
			if !ok {
				continue // purged on removal, can't happen unless the item set is partial
			}
			s.nodes[j].succs = append(s.nodes[j].succs, i)
			s.nodes[i].indeg++
		}
	}

	// roots in insertion order
	s.queue = s.queue[:0]
	for i := range s.nodes {
		if s.nodes[i].indeg == 0 {
			s.queue = append(s.queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(s.queue) > 0 {
		i := s.queue[0]
		s.queue = s.queue[1:]
		order = append(order, i)
		for _, j := range s.nodes[i].succs {
			s.nodes[j].indeg--
			if s.nodes[j].indeg == 0 {
				s.queue = append(s.queue, j)
			}
		}
	}

	if len(order) != n {
		var ids []ElementId
		for i := range s.nodes {
			if s.nodes[i].indeg > 0 {
				ids = append(ids, items[i].id)
			}
		}
		return order, errors.Wrapf(ErrDependencyCycle, "sorted %d of %d items, left: %v", len(order), n, ids)
	}
	return order, nil
}
