// Package deque provides a growable double-ended queue backed by a ring buffer.
package deque

const minCap = 16

// Deque is a double-ended queue of T. The zero value is empty and ready to
// use. Pushes are amortized O(1) at both ends; a Deque is not safe for
// concurrent use.
type Deque[T any] struct {
	data         []T
	offset, size int
}

func (d *Deque[T]) Len() int {
	return d.size
}

func (d *Deque[T]) PushBack(v T) {
	d.grow(1)

	pos := (d.offset + d.size) % len(d.data)
	d.data[pos] = v
	d.size++
}

func (d *Deque[T]) PushFront(v T) {
	d.grow(1)

	d.offset = (d.offset - 1 + len(d.data)) % len(d.data)
	d.data[d.offset] = v
	d.size++
}

func (d *Deque[T]) PopFront() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}

	v := d.data[d.offset]
	var zero T
	d.data[d.offset] = zero // let GC do its work

	d.offset = (d.offset + 1) % len(d.data)
	d.size--
	return v, true
}

func (d *Deque[T]) PopBack() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}

	pos := (d.offset + d.size - 1) % len(d.data)
	v := d.data[pos]
	var zero T
	d.data[pos] = zero

	d.size--
	return v, true
}

func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.data[d.offset], true
}

func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.data[(d.offset+d.size-1)%len(d.data)], true
}

// At returns the i-th element from the front. Panics if i is out of range.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.size {
		panic("deque: index out of range")
	}
	return d.data[(d.offset+i)%len(d.data)]
}

// change the capacity and defragment the buffer
func (d *Deque[T]) setCap(newCap int) {
	newData := make([]T, newCap)

	end := d.offset + d.size
	if end <= len(d.data) {
		copy(newData, d.data[d.offset:end])
	} else {
		copied := copy(newData, d.data[d.offset:])
		copy(newData[copied:], d.data[:d.size-copied])
	}

	d.data = newData
	d.offset = 0
}

func (d *Deque[T]) grow(n int) {
	targetSize := d.size + n
	targetCap := len(d.data)

	if targetCap >= targetSize {
		return // enough
	}

	if targetCap < minCap {
		targetCap = minCap
	}
	for targetCap < targetSize {
		targetCap <<= 1 // double the capacity
	}

	d.setCap(targetCap)
}
