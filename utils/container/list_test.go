package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/junction-sim-oss/utils/container"
)

type testVehicle struct {
	v      float64
	length float64
}

func (t testVehicle) V() float64 {
	return t.v
}

func (t testVehicle) Length() float64 {
	return t.length
}

func newTestNode(s float64) *container.ListNode[testVehicle, struct{}] {
	return &container.ListNode[testVehicle, struct{}]{
		S:     s,
		Value: testVehicle{v: 1, length: 4},
	}
}

func TestListInit(t *testing.T) {
	l := &container.List[testVehicle, struct{}]{}
	assert.Nil(t, l.First())
	assert.Nil(t, l.Last())
	assert.Equal(t, 0, l.Len())
}

func TestListOperation(t *testing.T) {
	l := &container.List[testVehicle, struct{}]{}

	// test: insert

	// ^, 2, ^
	n2 := newTestNode(2)
	l.PushBack(n2)
	// ^, 1, 2, ^
	n1 := newTestNode(1)
	l.PushFront(n1)
	// ^, 0, 1, 2, ^
	n0 := newTestNode(0)
	n1.InsertBefore(n0)
	// ^, 0, 1, 2, 3, ^
	n3 := newTestNode(3)
	n2.InsertAfter(n3)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []float64{0, 1, 2, 3}, l.Keys())

	// test: first last next prev

	n := l.First()
	assert.Equal(t, n0, n)
	n = n.Next()
	assert.Equal(t, n1, n)
	assert.Equal(t, n, n.Next().Prev())
	assert.Equal(t, n, n.Prev().Next())
	assert.Equal(t, n3, l.Last())
	assert.Equal(t, l, n1.Parent())
	assert.Equal(t, 1.0, n1.V())
	assert.Equal(t, 4.0, n1.L())

	// test: merge keeps order

	// ^, 0, 0.5, 1, 2, 2.5, 3, 4, ^
	adds := []*container.ListNode[testVehicle, struct{}]{
		newTestNode(4),
		newTestNode(0.5),
		newTestNode(2.5),
	}
	l.Merge(adds)
	assert.Equal(t, 7, l.Len())
	assert.Equal(t, []float64{0, 0.5, 1, 2, 2.5, 3, 4}, l.Keys())
	assert.Equal(t, 7, len(l.Values()))

	// test: remove

	l.Remove(n0)
	assert.Equal(t, 6, l.Len())
	assert.Equal(t, 0.5, l.First().S)
	assert.Nil(t, n0.Parent())
	l.Remove(l.Last())
	assert.Equal(t, n3, l.Last())
}
