package world

import (
	"sync"
	"testing"

	"github.com/hollowmere/mud/internal/game"
	"github.com/pixil98/go-testutil"
)

func testSpawner() (*Spawner, *MobileRegistry, *ObjectRegistry) {
	mobs := NewMobileRegistry()
	objs := NewObjectRegistry()
	return NewSpawner(mobs, objs), mobs, objs
}

func guardDef() *game.Mobile {
	return &game.Mobile{
		Aliases:   []string{"guard"},
		ShortDesc: "the town guard",
		Level:     5,
		MaxHP:     40,
	}
}

func swordDef() *game.Object {
	return &game.Object{
		Aliases:   []string{"sword"},
		ShortDesc: "a rusty sword",
		TypeStr:   "other",
		Condition: 100,
	}
}

func chestDef() *game.Object {
	return &game.Object{
		Aliases:   []string{"chest"},
		ShortDesc: "a wooden chest",
		TypeStr:   "container",
		Condition: 80,
	}
}

func TestSpawner_CreateMobile(t *testing.T) {
	s, _, _ := testSpawner()

	mi, err := s.CreateMobile(1001, guardDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "vnum", mi.MobileVnum, 1001)
	testutil.AssertEqual(t, "current hp", mi.CurrentHP, 40)
	testutil.AssertEqual(t, "max hp", mi.MaxHP, 40)
	testutil.AssertEqual(t, "active", mi.Active, true)
	if mi.Id == "" {
		t.Error("expected instance id to be set")
	}
	if mi.CreatedAt.IsZero() {
		t.Error("expected creation timestamp to be set")
	}
}

func TestSpawner_CreateMobile_NilDefinition(t *testing.T) {
	s, _, _ := testSpawner()

	_, err := s.CreateMobile(1001, nil)
	testutil.AssertErrorContains(t, err, "definition is nil")
}

func TestSpawner_UniqueIdsUnderConcurrency(t *testing.T) {
	s, _, _ := testSpawner()

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mi, err := s.CreateMobile(1001, guardDef())
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				mu.Lock()
				if seen[mi.Id] {
					t.Errorf("duplicate instance id %s", mi.Id)
				}
				seen[mi.Id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, "unique ids", len(seen), 800)
}

func TestSpawner_SpawnMobileInRoom(t *testing.T) {
	s, mobs, _ := testSpawner()

	mi, err := s.SpawnMobileInRoom(1001, guardDef(), 60, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "zone", mi.ZoneVnum, 60)
	testutil.AssertEqual(t, "room", mi.RoomVnum, 1000)
	testutil.AssertEqual(t, "tracked", len(mobs.GetInRoom(1000)), 1)
}

func TestSpawner_SpawnObjectInRoom(t *testing.T) {
	s, _, objs := testSpawner()

	oi, err := s.SpawnObjectInRoom(2001, swordDef(), 60, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "location kind", oi.Location.Kind, LocationInRoom)
	testutil.AssertEqual(t, "location room", oi.Location.RoomVnum, 1000)
	testutil.AssertEqual(t, "condition copied", oi.Condition, 100)
	testutil.AssertEqual(t, "tracked", len(objs.GetInRoom(1000)), 1)
}

func TestSpawner_CreateObject_ContainerGetsContents(t *testing.T) {
	s, _, _ := testSpawner()

	chest, err := s.CreateObject(2100, chestDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chest.Contents == nil {
		t.Error("expected container to have a contents inventory")
	}

	sword, err := s.CreateObject(2001, swordDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sword.Contents != nil {
		t.Error("expected non-container to have no contents inventory")
	}
}

func TestSpawner_Equip(t *testing.T) {
	s, _, _ := testSpawner()

	mi, err := s.SpawnMobileInRoom(1001, guardDef(), 60, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sword, err := s.CreateObject(2001, swordDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = s.Equip(sword, mi, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "slot occupant", mi.Equipment.GetSlot(16), sword)
	testutil.AssertEqual(t, "location kind", sword.Location.Kind, LocationEquipped)
	testutil.AssertEqual(t, "location owner", sword.Location.OwnerId, mi.Id)
}

func TestSpawner_Equip_DisplacesToInventory(t *testing.T) {
	s, _, _ := testSpawner()

	mi, err := s.SpawnMobileInRoom(1001, guardDef(), 60, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := s.CreateObject(2001, swordDef())
	second, _ := s.CreateObject(2001, swordDef())

	if err := s.Equip(first, mi, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Equip(second, mi, 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The first sword is displaced into inventory, never discarded
	testutil.AssertEqual(t, "slot occupant", mi.Equipment.GetSlot(16), second)
	testutil.AssertEqual(t, "displaced carried", mi.Inventory.Contains(first.Id), true)
	testutil.AssertEqual(t, "displaced location", first.Location.Kind, LocationInInventory)
	testutil.AssertEqual(t, "displaced owner", first.Location.OwnerId, mi.Id)
}

func TestSpawner_Equip_NilArguments(t *testing.T) {
	s, _, _ := testSpawner()

	mi, _ := s.SpawnMobileInRoom(1001, guardDef(), 60, 1000)
	sword, _ := s.CreateObject(2001, swordDef())

	testutil.AssertErrorContains(t, s.Equip(nil, mi, 16), "object instance is nil")
	testutil.AssertErrorContains(t, s.Equip(sword, nil, 16), "mobile instance is nil")
}

func TestSpawner_Give(t *testing.T) {
	s, _, objs := testSpawner()

	mi, _ := s.SpawnMobileInRoom(1001, guardDef(), 60, 1000)
	sword, _ := s.CreateObject(2001, swordDef())

	if err := s.Give(sword, mi); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	objs.Track(sword)

	testutil.AssertEqual(t, "carried", mi.Inventory.Contains(sword.Id), true)
	testutil.AssertEqual(t, "location kind", sword.Location.Kind, LocationInInventory)
	testutil.AssertEqual(t, "owned by", len(objs.GetOwnedBy(mi.Id)), 1)
}

func TestSpawner_PutInContainer(t *testing.T) {
	s, _, _ := testSpawner()

	chest, _ := s.SpawnObjectInRoom(2100, chestDef(), 60, 1000)
	coin, _ := s.CreateObject(2101, swordDef())

	if err := s.PutInContainer(coin, chest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "nested", chest.Contents.Contains(coin.Id), true)
	testutil.AssertEqual(t, "location kind", coin.Location.Kind, LocationInContainer)
	testutil.AssertEqual(t, "location owner", coin.Location.OwnerId, chest.Id)
}
