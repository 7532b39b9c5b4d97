package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConnectionsBetweenTwoRectangles(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 100, Text: "R1"},
		{Kind: Rectangle, X: 200, Y: 0, Width: 100, Height: 100, Text: "R2"},
		{Kind: Arrow, X: 100, Y: 50, Width: 100, Height: 0},
	}

	res, err := Render(shapes, gridOpts(400, 200))
	require.NoError(t, err)

	require.Len(t, res.Connections, 1)
	conn := res.Connections[0]
	assert.Equal(t, 2, conn.Arrow)
	assert.Equal(t, 0, conn.From)
	assert.Equal(t, 1, conn.To)
	assert.Equal(t, "R1 → R2", conn.String())
}

func TestResolveConnectionsUnlabelledShapes(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 100},
		{Kind: Circle, X: 200, Y: 0, Width: 100, Height: 100},
		{Kind: Arrow, X: 200, Y: 50, Width: -100, Height: 0},
	}
	labels := AssignLabels(shapes, ModeDiagram)

	conns := ResolveConnections(shapes, labels, DefaultTolerance)
	require.Len(t, conns, 1)
	assert.Equal(t, "circle at (200,0) → rectangle at (0,0)", conns[0].String())
}

func TestResolveConnectionsPrefersNewestShape(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 100, Y: 100, Width: 100, Height: 100, Text: "under"},
		{Kind: Rectangle, X: 100, Y: 100, Width: 50, Height: 50, Text: "over"},
		{Kind: Rectangle, X: 380, Y: 380, Width: 60, Height: 60, Text: "target"},
		{Kind: Arrow, X: 100, Y: 120, Width: 280, Height: 280},
	}
	labels := AssignLabels(shapes, ModeDiagram)

	conns := ResolveConnections(shapes, labels, DefaultTolerance)
	require.Len(t, conns, 1)
	assert.Equal(t, "over → target", conns[0].String())
}

func TestResolveConnectionsDropsDanglingArrows(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 0, Y: 0, Width: 300, Height: 300, Text: "big"},
		{Kind: Rectangle, X: 100, Y: 100, Width: 50, Height: 50, Text: "small"},
		{Kind: Rectangle, X: 380, Y: 380, Width: 60, Height: 60, Text: "target"},
		// Starts deep inside "big", away from every border.
		{Kind: Arrow, X: 150, Y: 220, Width: 230, Height: 180},
		// Ends in empty space.
		{Kind: Arrow, X: 380, Y: 400, Width: 200, Height: 0},
	}
	labels := AssignLabels(shapes, ModeDiagram)

	assert.Empty(t, ResolveConnections(shapes, labels, DefaultTolerance))
}

func TestResolveConnectionsZeroLengthArrow(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 100, Text: "box"},
		{Kind: Arrow, X: 100, Y: 50},
	}
	labels := AssignLabels(shapes, ModeDiagram)

	assert.Empty(t, ResolveConnections(shapes, labels, DefaultTolerance))
}

func TestResolveConnectionsArrowsAreNotTargets(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 100, Text: "a"},
		{Kind: Arrow, X: 100, Y: 50, Width: 100, Height: 0},
		{Kind: Arrow, X: 200, Y: 50, Width: 0, Height: 100},
	}
	labels := AssignLabels(shapes, ModeDiagram)

	assert.Empty(t, ResolveConnections(shapes, labels, DefaultTolerance))
}

func TestConnectionLabelsMatchLegend(t *testing.T) {
	shapes := []Shape{
		{Kind: Rectangle, X: 0, Y: 0, Width: 100, Height: 100, Role: RoleContent},
		{Kind: Rectangle, X: 200, Y: 0, Width: 100, Height: 100, Role: RoleContent},
		{Kind: Arrow, X: 100, Y: 50, Width: 100, Height: 0},
	}
	labels := AssignLabels(shapes, ModeMockup)

	conns := ResolveConnections(shapes, labels, DefaultTolerance)
	require.Len(t, conns, 1)
	assert.Equal(t, "#1 → #2", conns[0].String())
}
