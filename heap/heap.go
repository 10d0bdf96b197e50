// Package heap provides a binary min-heap of values ordered by a
// float64 priority.
//
// Values with equal priority are popped in the order they were pushed,
// so a Queue gives the same results on every run regardless of how the
// heap happens to be laid out internally.
package heap

// Queue is a priority queue. The value with the smallest priority
// is at the front of the queue.
//
// The zero Queue is empty and ready to use.
type Queue[E any] struct {
	// items holds the heap. items[0] is less than
	// all the others.
	items []entry[E]

	// seq counts the values pushed so far and
	// breaks ties between equal priorities.
	seq uint64
}

type entry[E any] struct {
	value    E
	priority float64
	seq      uint64
}

// Len returns the number of values in the queue.
func (q *Queue[E]) Len() int {
	return len(q.items)
}

// Push adds x to the queue with the given priority.
// The complexity is O(log n) where n = q.Len().
func (q *Queue[E]) Push(x E, priority float64) {
	q.items = append(q.items, entry[E]{
		value:    x,
		priority: priority,
		seq:      q.seq,
	})
	q.seq++
	q.up(len(q.items) - 1)
}

// Pop removes and returns the value with the smallest priority
// along with that priority. It panics if the queue is empty.
// The complexity is O(log n) where n = q.Len().
func (q *Queue[E]) Pop() (E, float64) {
	if len(q.items) == 0 {
		panic("heap.Queue.Pop called on empty queue")
	}
	n := len(q.items) - 1
	q.swap(0, n)
	q.down(0, n)
	e := q.items[n]
	q.items[n] = entry[E]{}
	q.items = q.items[:n]
	return e.value, e.priority
}

func (q *Queue[E]) less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (q *Queue[E]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *Queue[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q *Queue[E]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
}
