// Package reputation answers faction standing queries between creatures.
package reputation

// DefaultRepute is the standing of unrelated factions.
const DefaultRepute = 50

// Reputes classifies the standing of one faction toward another.
type Reputes interface {
	IsFriend(left, right int) bool
	IsEnemy(left, right int) bool
	IsNeutral(left, right int) bool
}

// Table is a square matrix of repute values indexed by faction.
type Table struct {
	values [][]int
}

// NewTable creates a table for n factions, all at DefaultRepute except
// each faction toward itself, which is friendly.
func NewTable(n int) *Table {
	values := make([][]int, n)
	for i := range values {
		values[i] = make([]int, n)
		for j := range values[i] {
			values[i][j] = DefaultRepute
		}
		values[i][i] = 100
	}
	return &Table{values: values}
}

// Set assigns the repute of left toward right.
func (t *Table) Set(left, right, value int) {
	if !t.valid(left, right) {
		return
	}
	t.values[left][right] = value
}

// Repute returns the repute of left toward right. Unknown factions are neutral.
func (t *Table) Repute(left, right int) int {
	if !t.valid(left, right) {
		return DefaultRepute
	}
	return t.values[left][right]
}

func (t *Table) IsFriend(left, right int) bool { return t.Repute(left, right) > DefaultRepute }

func (t *Table) IsEnemy(left, right int) bool { return t.Repute(left, right) < DefaultRepute }

func (t *Table) IsNeutral(left, right int) bool { return t.Repute(left, right) == DefaultRepute }

func (t *Table) valid(left, right int) bool {
	return left >= 0 && left < len(t.values) && right >= 0 && right < len(t.values[left])
}
