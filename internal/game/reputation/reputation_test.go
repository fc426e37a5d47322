package reputation

import "testing"

func TestTable(t *testing.T) {
	table := NewTable(4)
	table.Set(1, 2, 0)
	table.Set(2, 3, 90)
	table.Set(9, 0, 0) // ignored

	tests := []struct {
		name                   string
		left, right            int
		friend, enemy, neutral bool
	}{
		{"same faction", 1, 1, true, false, false},
		{"hostile", 1, 2, false, true, false},
		{"asymmetric", 2, 1, false, false, true},
		{"friendly", 2, 3, true, false, false},
		{"unknown faction", 9, 0, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.IsFriend(tt.left, tt.right); got != tt.friend {
				t.Errorf("IsFriend = %v, want %v", got, tt.friend)
			}
			if got := table.IsEnemy(tt.left, tt.right); got != tt.enemy {
				t.Errorf("IsEnemy = %v, want %v", got, tt.enemy)
			}
			if got := table.IsNeutral(tt.left, tt.right); got != tt.neutral {
				t.Errorf("IsNeutral = %v, want %v", got, tt.neutral)
			}
		})
	}
}
