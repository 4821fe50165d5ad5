package pathfind

type node struct {
	cell  Cell
	g     int
	h     int
	index int
}

func (n *node) f() int {
	return n.g + n.h
}

// openSet is a min-heap on f. Equal f-costs pop the node with the larger h
// first, which keeps search order (and therefore paths) reproducible.
type openSet []*node

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	fi, fj := o[i].f(), o[j].f()
	if fi != fj {
		return fi < fj
	}
	return o[i].h > o[j].h
}
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*node)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
