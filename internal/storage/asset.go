package storage

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type ValidatingSpec interface {
	Validate() error
}

// Asset wraps a definition spec with its catalog key. Every prototype
// (zone, room, mobile, object) is addressed by a virtual number that is
// unique within its catalog.
type Asset[T ValidatingSpec] struct {
	Version uint `json:"version"`
	Vnum    int  `json:"vnum"`
	Spec    T    `json:"spec"`
}

func (a *Asset[T]) Id() int {
	return a.Vnum
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Vnum <= 0 {
		el.Add(fmt.Errorf("vnum must be a positive integer"))
	}

	el.Add(a.Spec.Validate())

	return el.Err()
}
