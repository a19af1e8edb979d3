package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Toggle is its own inverse: two consecutive toggles restore the original
// state for that id.
func TestToggleInvolution(t *testing.T) {
	set := NewMembershipSet()

	if got := set.Toggle("3"); !got {
		t.Error("first toggle must add the id")
	}
	if !set.Contains("3") {
		t.Error("id should be a member after one toggle")
	}

	if got := set.Toggle("3"); got {
		t.Error("second toggle must remove the id")
	}
	if set.Contains("3") {
		t.Error("id should not be a member after two toggles")
	}
	if set.Len() != 0 {
		t.Errorf("set should be empty again, has %d members", set.Len())
	}
}

// Toggling an id that exists in no catalog is permitted; the set is an id
// relation, not a foreign key.
func TestToggleUnknownID(t *testing.T) {
	set := NewMembershipSet()
	set.Toggle("does-not-exist")
	if !set.Contains("does-not-exist") {
		t.Error("unknown ids are still toggleable")
	}
}

func TestClear(t *testing.T) {
	set := NewMembershipSet()
	set.Toggle("1")
	set.Toggle("2")
	set.Toggle("5")

	set.Clear()

	if set.Len() != 0 {
		t.Errorf("want empty set after Clear, got %d members", set.Len())
	}
	if set.Contains("1") {
		t.Error("cleared id still reported as member")
	}
}

func TestIDsSortedNumerically(t *testing.T) {
	set := NewMembershipSet()
	for _, id := range []string{"10", "2", "1", "30"} {
		set.Toggle(id)
	}

	want := []string{"1", "2", "10", "30"}
	if diff := cmp.Diff(want, set.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestMembershipStorePerUser(t *testing.T) {
	store := NewMembershipStore(time.Hour)

	a := store.ForUser("alice", MembershipEvents)
	a.Toggle("1")

	b := store.ForUser("bob", MembershipEvents)
	if b.Contains("1") {
		t.Error("membership must not leak between users")
	}

	ar := store.ForUser("alice", MembershipResources)
	if ar.Contains("1") {
		t.Error("membership must not leak between kinds")
	}

	// Same user and kind comes back to the same set.
	if !store.ForUser("alice", MembershipEvents).Contains("1") {
		t.Error("set lost between lookups")
	}
}

func TestMembershipStoreDrop(t *testing.T) {
	store := NewMembershipStore(time.Hour)
	store.ForUser("alice", MembershipEvents).Toggle("1")
	store.ForUser("alice", MembershipResources).Toggle("2")

	store.Drop("alice")

	if store.ForUser("alice", MembershipEvents).Contains("1") {
		t.Error("event registrations survived Drop")
	}
	if store.ForUser("alice", MembershipResources).Contains("2") {
		t.Error("saved resources survived Drop")
	}
}
