package Queues

// ring is a Queue backed by a circular slice that grows by half when full.
type ring[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty Queue with room for initCap items before it grows.
func MakeArrayQueue[T any](initCap uint) Queue[T] {
	return &ring[T]{content: make([]T, max(initCap, 2))}
}

func (u *ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *ring[T]) Size() uint {
	return u.sz
}

// resize copies the items to a new slice of length newLen, moving head to 0.
func (u *ring[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

// Clear drops every item, keeping the capacity.
func (u *ring[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ring[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz * 3 / 2)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop returns the oldest item, or an *EmptyQueueError when there is none.
func (u *ring[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *ring[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[u.head], true
}
