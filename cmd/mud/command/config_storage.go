package command

import (
	"fmt"
	"os"

	"github.com/hollowmere/mud/internal/game"
	"github.com/hollowmere/mud/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Zones   AssetConfig[*game.Zone]   `json:"zones"`
	Rooms   AssetConfig[*game.Room]   `json:"rooms"`
	Mobiles AssetConfig[*game.Mobile] `json:"mobiles"`
	Objects AssetConfig[*game.Object] `json:"objects"`
}

func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	zones, err := c.Zones.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating zone store: %w", err)
	}
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	mobiles, err := c.Mobiles.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating mobile store: %w", err)
	}
	objects, err := c.Objects.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating object store: %w", err)
	}

	return &game.Dictionary{
		Zones:   zones,
		Rooms:   rooms,
		Mobiles: mobiles,
		Objects: objects,
	}, nil
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Zones.Validate("zones"))
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Mobiles.Validate("mobiles"))
	el.Add(c.Objects.Validate("objects"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
