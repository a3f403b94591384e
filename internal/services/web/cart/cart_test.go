package cart

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func latte() Line {
	return Line{MenuItemID: "1", Name: "Latte", Price: decimal.RequireFromString("3.50")}
}

func TestAddAccumulatesAndClampsQuantity(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(latte(), 0)
	c.Add(latte(), 2)
	c.Add(Line{MenuItemID: "2", Name: "Scone", Price: decimal.NewFromInt(2)}, -4)
	c.Add(Line{MenuItemID: " "}, 3)

	if got := c.Quantity("1"); got != 3 {
		t.Fatalf("latte quantity = %d, want 3", got)
	}
	if got := c.Quantity("2"); got != 1 {
		t.Fatalf("scone quantity = %d, want 1", got)
	}
	if got := len(c.Lines()); got != 2 {
		t.Fatalf("lines = %d, want 2", got)
	}
	if got := c.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
	if got := c.Total().String(); got != "12.5" {
		t.Fatalf("Total() = %s, want 12.5", got)
	}
}

func TestQuantityNeverDropsBelowOne(t *testing.T) {
	t.Parallel()

	c := New(latte())
	for i := 0; i < 3; i++ {
		c.Decrement("1")
	}
	if got := c.Quantity("1"); got != 1 {
		t.Fatalf("after decrements = %d, want 1", got)
	}
	c.SetQuantity("1", -5)
	if got := c.Quantity("1"); got != 1 {
		t.Fatalf("after SetQuantity(-5) = %d, want 1", got)
	}
	c.Increment("1")
	c.SetQuantity("1", 6)
	if got := c.Quantity("1"); got != 6 {
		t.Fatalf("after SetQuantity(6) = %d, want 6", got)
	}
	for _, line := range c.Lines() {
		if line.Quantity < 1 {
			t.Fatalf("line %s quantity = %d", line.MenuItemID, line.Quantity)
		}
	}
}

func TestQuantitySaturatesAtMax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Cart)
	}{
		{name: "add max int twice", mutate: func(c *Cart) {
			c.Add(latte(), math.MaxInt)
			c.Add(latte(), 1)
		}},
		{name: "add max int then increment", mutate: func(c *Cart) {
			c.Add(latte(), math.MaxInt)
			c.Increment("1")
		}},
		{name: "increment past max", mutate: func(c *Cart) {
			c.Add(latte(), MaxQuantity)
			c.Increment("1")
		}},
		{name: "set above max", mutate: func(c *Cart) {
			c.Add(latte(), 1)
			c.SetQuantity("1", math.MaxInt)
		}},
		{name: "stored quantity above max", mutate: func(c *Cart) {
			line := latte()
			line.Quantity = MaxQuantity * 3
			*c = *New(line)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := New()
			tc.mutate(c)
			if got := c.Quantity("1"); got != MaxQuantity {
				t.Fatalf("quantity = %d, want %d", got, MaxQuantity)
			}
			if c.Total().IsNegative() {
				t.Fatalf("Total() = %s, want non-negative", c.Total())
			}
		})
	}
}

func TestMissingItemsAreReported(t *testing.T) {
	t.Parallel()

	c := New()
	if c.Increment("x") || c.Decrement("x") || c.SetQuantity("x", 2) || c.Remove("x") {
		t.Fatalf("operations on missing items should report false")
	}
}

func TestNewMergesStoredDuplicates(t *testing.T) {
	t.Parallel()

	first := latte()
	first.Quantity = 2
	second := latte()
	second.Quantity = 0
	c := New(first, second)
	if got := c.Quantity("1"); got != 3 {
		t.Fatalf("merged quantity = %d, want 3", got)
	}
}

func TestRemoveAndClear(t *testing.T) {
	t.Parallel()

	c := New(latte(), Line{MenuItemID: "2", Price: decimal.NewFromInt(1), Quantity: 1})
	if !c.Remove("1") {
		t.Fatalf("Remove() = false")
	}
	if c.Quantity("1") != 0 || c.Count() != 1 {
		t.Fatalf("after remove count = %d", c.Count())
	}
	c.Clear()
	if !c.IsEmpty() || !c.Total().IsZero() {
		t.Fatalf("expected empty cart")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New(latte())
	lines := c.Lines()
	lines[0].Quantity = 99
	if c.Quantity("1") != 1 {
		t.Fatalf("cart mutated through Lines() copy")
	}
}
