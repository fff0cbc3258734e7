package achievements

import (
	"time"

	"github.com/obinna/studymate/internal/store"
)

// UnlockXP is the flat XP award for unlocking any achievement.
const UnlockXP = 25

// Evaluate decides whether unlocking id would produce a new achievement
// record. Each achievement moves locked → unlocked exactly once: an id
// already present in unlocked, or absent from the catalog, yields (nil,
// false). The caller appends the record, bumps the count and awards XP.
func Evaluate(unlocked []store.Achievement, id string, now time.Time) (*store.Achievement, bool) {
	for _, a := range unlocked {
		if a.ID == id {
			return nil, false
		}
	}

	def, ok := Lookup(id)
	if !ok {
		return nil, false
	}

	return &store.Achievement{
		ID:          def.ID,
		Title:       def.Title,
		Description: def.Description,
		Icon:        def.Icon,
		Color:       def.Color,
		UnlockedAt:  now,
	}, true
}
