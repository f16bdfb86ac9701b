package collection

import (
	"fmt"
	"sync"
)

type TSD interface {
	GetTimestamp() int64
	HasLabels(map[string]string) bool
}

// TSDCache keeps the latest `capacity` time series data points in timestamp
// order. Data older than everything retained is dropped once the cache is full.
type TSDCache[T TSD] struct {
	lock     sync.RWMutex
	data     []T
	capacity int
	head     int
	num      int
}

func NewTSDCache[T TSD](capacity int) *TSDCache[T] {
	if capacity <= 0 {
		panic("invalid TSDCache capacity")
	}
	return &TSDCache[T]{
		data:     make([]T, capacity),
		capacity: capacity,
	}
}

func (c *TSDCache[T]) at(i int) T {
	return c.data[(c.head+i)%c.capacity]
}

func (c *TSDCache[T]) set(i int, d T) {
	c.data[(c.head+i)%c.capacity] = d
}

// search returns the first logical position whose timestamp is >= t, or
// > t when after is set.
func (c *TSDCache[T]) search(t int64, after bool) int {
	l, r := 0, c.num
	for l < r {
		m := l + (r-l)/2
		ts := c.at(m).GetTimestamp()
		if ts < t || (after && ts == t) {
			l = m + 1
		} else {
			r = m
		}
	}
	return l
}

func (c *TSDCache[T]) Put(d T) {
	c.lock.Lock()
	defer c.lock.Unlock()

	ts := d.GetTimestamp()
	if c.num == c.capacity && ts < c.at(0).GetTimestamp() {
		return
	}

	pos := c.search(ts, true)
	if c.num < c.capacity {
		for i := c.num; i > pos; i-- {
			c.set(i, c.at(i-1))
		}
		c.set(pos, d)
		c.num++
		return
	}

	for i := 0; i < pos-1; i++ {
		c.set(i, c.at(i+1))
	}
	c.set(pos-1, d)
}

func (c *TSDCache[T]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.num
}

func (c *TSDCache[T]) String() string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	s := make([]T, c.num)
	for i := range s {
		s[i] = c.at(i)
	}
	return fmt.Sprint(s)
}

// Query returns the time series with the timestamp in [start, end).
// The boolean is false when the cache can not guarantee it holds every point
// of the range, i.e. when the oldest retained point is newer than start.
func (c *TSDCache[T]) Query(start, end int64, labels map[string]string) ([]T, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.num == 0 {
		return []T{}, false
	}

	result := []T{}
	from := c.search(start, false)
	to := c.search(end, false)
	for i := from; i < to; i++ {
		d := c.at(i)
		if d.HasLabels(labels) {
			result = append(result, d)
		}
	}
	return result, c.at(0).GetTimestamp() <= start
}
