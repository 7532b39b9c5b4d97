package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignLabelsDiagram(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, Text: "login"},
		{Kind: Rectangle},
		{Kind: Circle, Text: "   "},
		{Kind: Arrow, Text: "ignored"},
		{Kind: Diamond, Text: "valid?"},
	}

	labels := AssignLabels(shapes, ModeDiagram)

	assert.Equal(t, 2, labels.Len())
	assert.Equal(t, map[int]int{0: 1, 4: 2}, labels.Map())
	assert.Equal(t, []int{0, 4}, labels.Indices())

	_, ok := labels.Number(1)
	assert.False(t, ok, "unlabelled shapes never take a number")
	_, ok = labels.Number(99)
	assert.False(t, ok)
}

func TestAssignLabelsMockup(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, Text: "nav"},
		{Kind: Rectangle, Role: RoleContent},
		{Kind: Rectangle, Role: RoleContent, Text: "hero"},
	}

	labels := AssignLabels(shapes, ModeMockup)
	assert.Equal(t, map[int]int{1: 1, 2: 2}, labels.Map())
}

func TestAssignLabelsStableUnderAppend(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, Text: "a"},
		{Kind: Circle},
		{Kind: Rectangle, Text: "b"},
	}
	before := AssignLabels(shapes, ModeDiagram).Map()

	shapes = append(shapes, Shape{Kind: Diamond, Text: "c"})
	after := AssignLabels(shapes, ModeDiagram).Map()

	for i, n := range before {
		assert.Equal(t, n, after[i], "shape %d renumbered", i)
	}
	assert.Equal(t, 3, after[3])
}

func TestAssignLabelsOrderSensitive(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, Text: "first"},
		{Kind: Rectangle, Text: "second"},
	}
	n, _ := AssignLabels(shapes, ModeDiagram).Number(1)
	assert.Equal(t, 2, n)

	n, ok := AssignLabels(shapes[1:], ModeDiagram).Number(0)
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestLabelsName(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 10, Y: 20, Text: "api"},
		{Kind: Circle, X: 30, Y: 40, Role: RoleContent},
		{Kind: Diamond, X: 50, Y: 60},
	}
	labels := AssignLabels(shapes, ModeMockup)

	assert.Equal(t, "api", labels.Name(0, shapes))
	assert.Equal(t, "#1", labels.Name(1, shapes))
	assert.Equal(t, "diamond at (50,60)", labels.Name(2, shapes))
	assert.Equal(t, "", labels.Name(3, shapes))
}
