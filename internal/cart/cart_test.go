package cart

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddInsertsThenIncrements(t *testing.T) {
	var c Cart
	require.True(t, c.Add("A", 1))
	require.True(t, c.Add("B", 2))
	require.True(t, c.Add("A", 3))

	require.Equal(t, []Line{{ID: "A", Qty: 4}, {ID: "B", Qty: 2}}, c.Lines())
	require.Equal(t, 6, c.Count())
	require.Equal(t, 2, c.Len())
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	var c Cart
	require.False(t, c.Add("A", 0))
	require.False(t, c.Add("A", -2))
	require.False(t, c.Add("  ", 1))
	require.True(t, c.Empty())
}

func TestRemove(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: 1}, {ID: "B", Qty: 1}})
	require.True(t, c.Remove("A"))
	require.False(t, c.Remove("missing"))
	require.Equal(t, []Line{{ID: "B", Qty: 1}}, c.Lines())
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: 3}, {ID: "B", Qty: 1}})
	require.True(t, c.SetQuantity("A", 0))
	require.Equal(t, 0, c.Quantity("A"))
	require.Equal(t, []Line{{ID: "B", Qty: 1}}, c.Lines())

	require.True(t, c.SetQuantity("B", -1))
	require.True(t, c.Empty())
}

func TestSetQuantityReplacesOrInserts(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: 3}})
	require.True(t, c.SetQuantity("A", 7))
	require.False(t, c.SetQuantity("A", 7))
	require.True(t, c.SetQuantity("C", 2))
	require.Equal(t, []Line{{ID: "A", Qty: 7}, {ID: "C", Qty: 2}}, c.Lines())
}

func TestClear(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: 3}})
	require.True(t, c.Clear())
	require.False(t, c.Clear())
	require.Equal(t, 0, c.Count())
}

func TestFromLinesNormalises(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: 1}, {ID: "", Qty: 4}, {ID: "B", Qty: 0}, {ID: "A", Qty: 2}})
	require.Equal(t, []Line{{ID: "A", Qty: 3}}, c.Lines())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: 1}})
	lines := c.Lines()
	lines[0].Qty = 99
	require.Equal(t, 1, c.Quantity("A"))
}

func TestAddClampsAtMaxQuantity(t *testing.T) {
	var c Cart
	require.True(t, c.Add("A", math.MaxInt))
	require.Equal(t, MaxQuantity, c.Quantity("A"))
	require.False(t, c.Add("A", 1))
	require.Equal(t, MaxQuantity, c.Quantity("A"))
	require.Equal(t, MaxQuantity, c.Count())

	require.True(t, c.Add("B", MaxQuantity-1))
	require.True(t, c.Add("B", math.MaxInt))
	require.Equal(t, MaxQuantity, c.Quantity("B"))
}

func TestSetQuantityClampsAtMaxQuantity(t *testing.T) {
	var c Cart
	require.True(t, c.SetQuantity("A", math.MaxInt))
	require.Equal(t, MaxQuantity, c.Quantity("A"))
	require.False(t, c.SetQuantity("A", MaxQuantity+5))
}

func TestFromLinesClampsOversizedRecords(t *testing.T) {
	c := FromLines([]Line{{ID: "A", Qty: math.MaxInt}, {ID: "A", Qty: math.MaxInt}})
	require.Equal(t, []Line{{ID: "A", Qty: MaxQuantity}}, c.Lines())
}

func TestRandomOperationsKeepLinesValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"A", "B", "C", "D"}
	sizes := []int{-2, -1, 0, 1, 2, 3, 4, MaxQuantity, math.MaxInt}
	var c Cart
	for i := 0; i < 5000; i++ {
		id := ids[rng.Intn(len(ids))]
		qty := sizes[rng.Intn(len(sizes))]
		switch rng.Intn(4) {
		case 0:
			c.Add(id, qty)
		case 1:
			c.Remove(id)
		case 2:
			c.SetQuantity(id, qty)
		case 3:
			if rng.Intn(20) == 0 {
				c.Clear()
			}
		}

		seen := map[string]bool{}
		sum := 0
		for _, l := range c.Lines() {
			require.False(t, seen[l.ID], "duplicate line %s", l.ID)
			require.Positive(t, l.Qty)
			require.LessOrEqual(t, l.Qty, MaxQuantity)
			seen[l.ID] = true
			sum += l.Qty
		}
		require.Equal(t, sum, c.Count())
	}
}
