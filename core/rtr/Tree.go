package rtr

// Tree is a radix tree (compressed trie) holding long static paths.
// Shared prefixes are stored once, so deep API paths like
// /api/v2/accounts/primary/settings amortize their common head.
//
// The tree only ever stores exact paths; parameter and wildcard routes
// live in the parameterized list partition.
//
// Structure example for /user, /users, /user/settings:
//   root: "/user"  (route for /user)
//    ├── "s" (route for /users)
//    └── "/settings" (route for /user/settings)
//
// Zero value is ready to use - the root node is embedded, not a pointer.
type Tree[T any] struct {
	root treeNode[T]
}

// Add inserts a route under the given normalized path, splitting nodes
// where the new path diverges from an existing prefix. Re-adding an
// existing path replaces its route.
func (tree *Tree[T]) Add(path string, route *Route[T]) {
	i := 0      // Current position in the path string
	offset := 0 // Start of the current node's prefix in the path
	node := &tree.root

	for {
		if i == len(path) {
			// Path consumed exactly at the end of this node's prefix
			// Example:
			//   node: /blog|
			//   path: /blog|
			if i-offset == len(node.prefix) {
				node.route = route
				return
			}

			// Path is shorter than the node prefix - split
			// Example:
			//   node: /blog|feed
			//   path: /blog|
			node.split(i-offset, "", route)
			return
		}

		// Node prefix fully matched, descend or extend
		// Example:
		//   node: /|
		//   path: /|blog
		if i-offset == len(node.prefix) {
			char := path[i]

			if char >= node.startIndex && char < node.endIndex {
				if index := node.indices[char-node.startIndex]; index != 0 {
					node = node.children[index]
					offset = i
					i++
					continue
				}
			}

			// Fresh tree: reuse the empty root instead of adding a child
			if node.prefix == "" && node.route == nil && len(node.children) == 0 {
				node.prefix = path[i:]
				node.route = route
				return
			}

			node.addChild(&treeNode[T]{prefix: path[i:], route: route})
			return
		}

		// Paths diverge inside the prefix - split at the conflict point
		// Example:
		//   node: /b|ag
		//   path: /b|riefcase
		if path[i] != node.prefix[i-offset] {
			node.split(i-offset, path[i:], route)
			return
		}

		i++
	}
}

// Lookup finds the route for an exact path, or nil.
func (tree *Tree[T]) Lookup(path string) *Route[T] {
	var i uint // unsigned for cheaper bounds checks
	node := &tree.root

	for i < uint(len(path)) {
		// Node prefix fully matched, move to the child indexed by the
		// next character
		if i == uint(len(node.prefix)) {
			char := path[i]

			if char >= node.startIndex && char < node.endIndex {
				if index := node.indices[char-node.startIndex]; index != 0 {
					node = node.children[index]
					path = path[i:]
					i = 1
					continue
				}
			}

			return nil
		}

		// Character mismatch - no route here
		if path[i] != node.prefix[i] {
			return nil
		}

		i++
	}

	// Path consumed; a route only exists if the prefix ended too
	if i == uint(len(node.prefix)) {
		return node.route
	}

	return nil
}

// each calls fn for every route stored in the tree.
func (tree *Tree[T]) each(fn func(*Route[T])) {
	tree.root.each(fn)
}
