package cache

// lruNode is an element of an lruList. It carries its key so that the
// evicted entry can be removed from the owning map in O(1).
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is an intrusive doubly-linked list ordered from most recently used
// (head) to least recently used (tail). It is not safe for concurrent use;
// the owning shard holds the lock.
type lruList[K comparable] struct {
	head, tail *lruNode[K]
	n          int
}

// pushFront inserts key as the most recently used node.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.link(node)
	return node
}

// touch marks node as most recently used.
func (l *lruList[K]) touch(node *lruNode[K]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.link(node)
}

// remove detaches node from the list.
func (l *lruList[K]) remove(node *lruNode[K]) {
	l.unlink(node)
}

// popBack removes the least recently used node and returns its key.
func (l *lruList[K]) popBack() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

func (l *lruList[K]) len() int { return l.n }

func (l *lruList[K]) reset() {
	l.head, l.tail, l.n = nil, nil, 0
}

func (l *lruList[K]) link(node *lruNode[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.n++
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev, node.next = nil, nil
	l.n--
}
