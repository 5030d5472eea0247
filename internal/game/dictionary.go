package game

import (
	"github.com/hollowmere/mud/internal/storage"
)

// Dictionary holds all game definition stores. It provides a single
// reference that can be passed around so consumers all share the same
// signature.
type Dictionary struct {
	Zones   storage.Storer[*Zone]
	Rooms   storage.Storer[*Room]
	Mobiles storage.Storer[*Mobile]
	Objects storage.Storer[*Object]
}
