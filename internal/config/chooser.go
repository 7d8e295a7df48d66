package config

import "math/rand"

// Chooser draws items at random with integer weights. A zero-value Chooser
// is empty and ready to use.
type Chooser[T any] struct {
	items   []T
	weights []int
	total   int
}

// Push adds an item. Entries with non-positive weight are never drawn and
// are dropped outright.
func (c *Chooser[T]) Push(item T, weight int) {
	if weight <= 0 {
		return
	}
	c.items = append(c.items, item)
	c.weights = append(c.weights, weight)
	c.total += weight
}

// Len reports how many drawable items the chooser holds.
func (c *Chooser[T]) Len() int { return len(c.items) }

// Choose draws one item, each with probability weight/total. The second
// return is false when the chooser is empty.
func (c *Chooser[T]) Choose(rng *rand.Rand) (T, bool) {
	var zero T
	if c.total == 0 {
		return zero, false
	}
	n := rng.Intn(c.total)
	for i, w := range c.weights {
		n -= w
		if n < 0 {
			return c.items[i], true
		}
	}
	return zero, false
}
