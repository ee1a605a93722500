package domain

import "time"

type Cycle struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time

	// Iterations are ordered chronologically with non-overlapping
	// date ranges.
	Iterations []Iteration

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Iteration struct {
	// Number is the 1-based position within the cycle. Allocations
	// reference iterations by this number.
	Number    int
	StartDate time.Time
	EndDate   time.Time
}

// Weeks returns the iteration length in fractional weeks. A 1-week
// iteration contributes 1x team capacity, a 3-week iteration 3x.
func (it Iteration) Weeks() float64 {
	d := it.EndDate.Sub(it.StartDate)
	if d <= 0 {
		return 0
	}
	return d.Hours() / (7 * 24)
}

// Iteration returns the iteration with the given number, or nil.
func (c Cycle) Iteration(number int) *Iteration {
	for i := range c.Iterations {
		if c.Iterations[i].Number == number {
			return &c.Iterations[i]
		}
	}
	return nil
}

// TotalWeeks returns the summed fractional-week length of all iterations.
func (c Cycle) TotalWeeks() float64 {
	var total float64
	for _, it := range c.Iterations {
		total += it.Weeks()
	}
	return total
}
