package world

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pixil98/go-testutil"
)

func testMobile(id string, vnum, zoneVnum, roomVnum int) *MobileInstance {
	return &MobileInstance{
		Id:         id,
		MobileVnum: vnum,
		ZoneVnum:   zoneVnum,
		RoomVnum:   roomVnum,
		Active:     true,
		Inventory:  NewInventory(),
		Equipment:  NewEquipment(),
	}
}

func testObject(id string, vnum, zoneVnum int, loc Location) *ObjectInstance {
	return &ObjectInstance{
		Id:         id,
		ObjectVnum: vnum,
		ZoneVnum:   zoneVnum,
		Location:   loc,
		Active:     true,
	}
}

func TestMobileRegistry_TrackAndQuery(t *testing.T) {
	r := NewMobileRegistry()

	r.Track(testMobile("a", 1001, 60, 1000))
	r.Track(testMobile("b", 1001, 60, 1001))
	r.Track(testMobile("c", 1002, 61, 2000))

	testutil.AssertEqual(t, "all", len(r.GetAll()), 3)
	testutil.AssertEqual(t, "in room 1000", len(r.GetInRoom(1000)), 1)
	testutil.AssertEqual(t, "in zone 60", len(r.GetInZone(60)), 2)
	testutil.AssertEqual(t, "count of 1001", r.CountOfPrototype(1001), 2)
	testutil.AssertEqual(t, "count of 1001 in zone 60", r.CountOfPrototypeInZone(60, 1001), 2)
	testutil.AssertEqual(t, "count of 1001 in zone 61", r.CountOfPrototypeInZone(61, 1001), 0)

	if r.Get("a") == nil {
		t.Error("expected instance a to be tracked")
	}
}

func TestMobileRegistry_Remove(t *testing.T) {
	r := NewMobileRegistry()

	mi := testMobile("a", 1001, 60, 1000)
	r.Track(mi)

	testutil.AssertEqual(t, "removed", r.Remove("a"), true)
	testutil.AssertEqual(t, "active flag cleared", mi.Active, false)
	testutil.AssertEqual(t, "remove twice", r.Remove("a"), false)
	testutil.AssertEqual(t, "all after remove", len(r.GetAll()), 0)
}

func TestMobileRegistry_CleanupInactive(t *testing.T) {
	r := NewMobileRegistry()

	alive := testMobile("alive", 1001, 60, 1000)
	dead := testMobile("dead", 1001, 60, 1000)
	dead.Active = false
	r.Track(alive)
	r.Track(dead)

	testutil.AssertEqual(t, "removed count", r.CleanupInactive(), 1)
	testutil.AssertEqual(t, "remaining", len(r.GetAll()), 1)
	testutil.AssertEqual(t, "count of 1001", r.CountOfPrototype(1001), 1)
}

func TestObjectRegistry_Queries(t *testing.T) {
	r := NewObjectRegistry()

	r.Track(testObject("ground", 2001, 60, Location{Kind: LocationInRoom, RoomVnum: 1000}))
	r.Track(testObject("worn", 2001, 60, Location{Kind: LocationEquipped, OwnerId: "guard-1"}))
	r.Track(testObject("carried", 2002, 60, Location{Kind: LocationInInventory, OwnerId: "guard-1"}))
	r.Track(testObject("nested", 2003, 61, Location{Kind: LocationInContainer, OwnerId: "chest-1"}))

	testutil.AssertEqual(t, "in room", len(r.GetInRoom(1000)), 1)
	testutil.AssertEqual(t, "in zone 60", len(r.GetInZone(60)), 3)
	testutil.AssertEqual(t, "owned by guard", len(r.GetOwnedBy("guard-1")), 2)
	testutil.AssertEqual(t, "owned by chest excludes container kind", len(r.GetOwnedBy("chest-1")), 0)
	testutil.AssertEqual(t, "count of 2001", r.CountOfPrototype(2001), 2)
	testutil.AssertEqual(t, "count of 2001 in zone", r.CountOfPrototypeInZone(60, 2001), 2)
}

func TestObjectRegistry_RemoveAndCleanup(t *testing.T) {
	r := NewObjectRegistry()

	oi := testObject("a", 2001, 60, Location{Kind: LocationInRoom, RoomVnum: 1000})
	r.Track(oi)

	testutil.AssertEqual(t, "removed", r.Remove("a"), true)
	testutil.AssertEqual(t, "active cleared", oi.Active, false)
	testutil.AssertEqual(t, "remove missing", r.Remove("missing"), false)

	stale := testObject("stale", 2001, 60, Location{Kind: LocationInRoom, RoomVnum: 1000})
	stale.Active = false
	r.Track(stale)
	testutil.AssertEqual(t, "cleanup", r.CleanupInactive(), 1)
}

func TestRegistries_ConcurrentAccess(t *testing.T) {
	mobs := NewMobileRegistry()
	objs := NewObjectRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := fmt.Sprintf("mob-%d-%d", n, j)
				mobs.Track(testMobile(id, 1001, 60, 1000))
				mobs.GetInZone(60)
				mobs.CountOfPrototypeInZone(60, 1001)
				mobs.Remove(id)

				oid := fmt.Sprintf("obj-%d-%d", n, j)
				oi := testObject(oid, 2001, 60, Location{Kind: LocationInRoom, RoomVnum: 1000})
				objs.Track(oi)
				objs.Place(oi, Location{Kind: LocationInInventory, OwnerId: "guard"})
				objs.GetOwnedBy("guard")
				objs.Remove(oid)
			}
		}(i)
	}
	wg.Wait()

	testutil.AssertEqual(t, "mobiles drained", len(mobs.GetAll()), 0)
	testutil.AssertEqual(t, "objects drained", len(objs.GetAll()), 0)
}
