package rtr

// treeNode is a single radix tree node. Children are indexed by their
// first character through a sparse indices array covering the range
// [startIndex, endIndex), giving O(1) child selection without a map.
//
// Index structure example:
//   startIndex = 'a' (97), endIndex = 'd' (100)
//   indices = [2, 0, 1]  // positions for 'a', 'b', 'c'
//   'a' -> children[2], 'c' -> children[1], 'b' -> no child
//
// children[0] is always nil; index value 0 means "no child".
type treeNode[T any] struct {
	prefix     string
	route      *Route[T]
	children   []*treeNode[T]
	indices    []uint8
	startIndex uint8
	endIndex   uint8
}

// split splits the node at the given index and re-hangs the existing
// suffix below the common prefix. If remainder is non-empty a sibling
// branch is created for it, otherwise the route lands on the split point.
//
// Split example:
//   Original: "blogs" -> (route1)
//   New path: "blog"  -> (route2)
//   Result:   "blog" (route2)
//              └── "s" (route1)
func (node *treeNode[T]) split(index int, remainder string, route *Route[T]) {
	splitNode := node.clone(node.prefix[index:])
	node.reset(node.prefix[:index])
	node.addChild(splitNode)

	if remainder == "" {
		node.route = route
		return
	}

	node.addChild(&treeNode[T]{prefix: remainder, route: route})
}

// clone copies the node with a new prefix. The copy is shallow - children
// are shared, which is safe because inserts only ever add nodes.
func (node *treeNode[T]) clone(prefix string) *treeNode[T] {
	return &treeNode[T]{
		prefix:     prefix,
		route:      node.route,
		children:   node.children,
		indices:    node.indices,
		startIndex: node.startIndex,
		endIndex:   node.endIndex,
	}
}

// reset turns the node into a pure routing node holding only the prefix.
func (node *treeNode[T]) reset(prefix string) {
	node.prefix = prefix
	node.route = nil
	node.children = nil
	node.indices = nil
	node.startIndex = 0
	node.endIndex = 0
}

// addChild registers a child node, expanding the character index range
// as needed. An existing child with the same first character is replaced.
func (node *treeNode[T]) addChild(child *treeNode[T]) {
	// children[0] is reserved for "no child"
	if len(node.children) == 0 {
		node.children = append(node.children, nil)
	}

	firstChar := child.prefix[0]

	switch {
	case node.startIndex == 0:
		node.startIndex = firstChar
		node.indices = []uint8{0}
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar < node.startIndex:
		diff := node.startIndex - firstChar
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices[diff:], node.indices)
		node.startIndex = firstChar
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))

	case firstChar >= node.endIndex:
		diff := firstChar - node.endIndex + 1
		newIndices := make([]uint8, diff+uint8(len(node.indices)))
		copy(newIndices, node.indices)
		node.indices = newIndices
		node.endIndex = node.startIndex + uint8(len(node.indices))
	}

	index := node.indices[firstChar-node.startIndex]

	if index == 0 {
		node.indices[firstChar-node.startIndex] = uint8(len(node.children))
		node.children = append(node.children, child)
		return
	}

	node.children[index] = child
}

// each calls fn for every route at or below this node.
func (node *treeNode[T]) each(fn func(*Route[T])) {
	if node.route != nil {
		fn(node.route)
	}
	for _, child := range node.children {
		if child != nil {
			child.each(fn)
		}
	}
}
