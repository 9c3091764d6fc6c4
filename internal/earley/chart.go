package earley

// Chart is the ordered sequence of state sets built during one parse,
// one column per input position 0..N. Columns keep insertion order;
// that order is what the documented first-match tie-breaks refer to.
type Chart struct {
	columns []column
}

type column struct {
	states []State
	seen   map[string]struct{}
}

// NewChart sizes a chart for a sentence of n tokens: n+1 columns,
// column i holding states that end at position i.
func NewChart(n int) *Chart {
	c := &Chart{columns: make([]column, n+1)}
	for i := range c.columns {
		c.columns[i].seen = make(map[string]struct{})
	}
	return c
}

// Add inserts a state into the given column. It reports false without
// inserting when the position is out of range or an equal state is
// already present. Idempotent insertion is what terminates prediction
// on recursive grammars.
func (c *Chart) Add(s State, position int) bool {
	if position < 0 || position >= len(c.columns) {
		return false
	}
	col := &c.columns[position]
	k := s.key()
	if _, ok := col.seen[k]; ok {
		return false
	}
	col.seen[k] = struct{}{}
	col.states = append(col.states, s)
	return true
}

// Len returns the number of columns.
func (c *Chart) Len() int {
	return len(c.columns)
}

// States returns the states of one column in insertion order. The
// returned slice is the chart's own storage; callers must not mutate it.
func (c *Chart) States(position int) []State {
	return c.columns[position].states
}
