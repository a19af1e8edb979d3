package main

import (
	"fmt"
	"log"
	"time"
)

// Catalog is a read-only collection of entities seeded at process start.
// All() returns a copy in declaration order so callers can filter and sort
// without touching the authoritative slice.
type Catalog[E any] struct {
	items []E
}

func (c *Catalog[E]) All() []E {
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog[E]) Len() int {
	return len(c.items)
}

// Find returns the entity with the given id, if present.
func (c *Catalog[E]) Find(id string, idOf func(E) string) (E, bool) {
	for _, it := range c.items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero E
	return zero, false
}

var (
	Rooms     *Catalog[ChatRoom]
	Resources *Catalog[Resource]
	Events    *Catalog[Event]
)

// InitCatalogs seeds the in-memory catalogs. There is no database: the
// platform ships its community content with the binary.
func InitCatalogs() {
	Rooms = &Catalog[ChatRoom]{items: seedRooms()}
	Resources = &Catalog[Resource]{items: seedResources()}
	Events = &Catalog[Event]{items: seedEvents()}

	if err := checkUniqueIDs("rooms", Rooms.items, func(r ChatRoom) string { return r.ID }); err != nil {
		log.Fatalf("❌ Catalog invalid: %v", err)
	}
	if err := checkUniqueIDs("resources", Resources.items, func(r Resource) string { return r.ID }); err != nil {
		log.Fatalf("❌ Catalog invalid: %v", err)
	}
	if err := checkUniqueIDs("events", Events.items, func(e Event) string { return e.ID }); err != nil {
		log.Fatalf("❌ Catalog invalid: %v", err)
	}

	log.Printf("✅ Catalogs loaded: %d rooms, %d resources, %d events", Rooms.Len(), Resources.Len(), Events.Len())
}

func checkUniqueIDs[E any](name string, items []E, idOf func(E) string) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		id := idOf(it)
		if seen[id] {
			return fmt.Errorf("%s: duplicate id %q", name, id)
		}
		seen[id] = true
	}
	return nil
}

func seedRooms() []ChatRoom {
	return []ChatRoom{
		{
			ID:           "1",
			Name:         "General Support",
			Description:  "A safe space for general trauma support and discussion",
			Category:     RoomCategoryGeneral,
			Participants: 28,
			IsVREnabled:  true,
			Tags:         []string{"All trauma types", "General support"},
		},
		{
			ID:           "2",
			Name:         "PTSD Support Group",
			Description:  "Focused discussion and support for those dealing with PTSD",
			Category:     RoomCategorySpecific,
			Participants: 15,
			IsVREnabled:  true,
			Tags:         []string{"PTSD", "Anxiety"},
		},
		{
			ID:           "3",
			Name:         "Healing Through Art",
			Description:  "Express and process trauma through creative expression",
			Category:     RoomCategoryActivity,
			Participants: 12,
			IsVREnabled:  false,
			Tags:         []string{"Art therapy", "Creative healing"},
		},
		{
			ID:           "4",
			Name:         "Survivors Circle",
			Description:  "A community for survivors to connect and support each other",
			Category:     RoomCategoryGeneral,
			Participants: 22,
			IsVREnabled:  true,
			Tags:         []string{"Survivors", "Community"},
		},
		{
			ID:           "5",
			Name:         "Mindfulness Practice",
			Description:  "Learn and practice mindfulness techniques for trauma healing",
			Category:     RoomCategoryActivity,
			Participants: 18,
			IsVREnabled:  false,
			Tags:         []string{"Mindfulness", "Meditation"},
		},
		{
			ID:           "6",
			Name:         "Childhood Trauma",
			Description:  "Support specific to processing childhood trauma",
			Category:     RoomCategorySpecific,
			Participants: 16,
			IsVREnabled:  true,
			Tags:         []string{"Childhood trauma", "Family"},
		},
	}
}

func seedResources() []Resource {
	return []Resource{
		{
			ID:          "1",
			Title:       "Understanding Trauma: A Comprehensive Guide",
			Type:        ResourceTypeArticle,
			Category:    ResourceCategoryEducational,
			Description: "Learn about the different types of trauma, how they affect the brain and body, and common symptoms.",
			ImageURL:    "https://images.pexels.com/photos/4101143/pexels-photo-4101143.jpeg",
			URL:         "#",
			Tags:        []string{"Trauma basics", "Psychology", "Education"},
		},
		{
			ID:          "2",
			Title:       "Breathing Techniques for Anxiety Management",
			Type:        ResourceTypeVideo,
			Category:    ResourceCategoryPractical,
			Description: "This 10-minute guided video teaches practical breathing exercises to help manage anxiety symptoms.",
			ImageURL:    "https://images.pexels.com/photos/897817/pexels-photo-897817.jpeg",
			URL:         "#",
			Tags:        []string{"Anxiety", "Breathing", "Coping skills"},
		},
		{
			ID:          "3",
			Title:       "The Body Keeps the Score",
			Type:        ResourceTypeBook,
			Category:    ResourceCategoryEducational,
			Description: "Dr. Bessel van der Kolk's groundbreaking book on how trauma affects both mind and body.",
			ImageURL:    "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg",
			URL:         "#",
			Tags:        []string{"Books", "Body-mind connection", "PTSD"},
		},
		{
			ID:          "4",
			Title:       "Grounding Techniques for Flashbacks",
			Type:        ResourceTypeArticle,
			Category:    ResourceCategoryPractical,
			Description: "Five effective grounding techniques to help during flashbacks and dissociative episodes.",
			ImageURL:    "https://images.pexels.com/photos/3768891/pexels-photo-3768891.jpeg",
			URL:         "#",
			Tags:        []string{"Flashbacks", "Grounding", "Self-help"},
		},
		{
			ID:          "5",
			Title:       "Healing Through Movement: Trauma-Sensitive Yoga",
			Type:        ResourceTypeVideo,
			Category:    ResourceCategoryActivity,
			Description: "A gentle yoga practice designed specifically for trauma survivors, with modifications for all mobility levels.",
			ImageURL:    "https://images.pexels.com/photos/4056535/pexels-photo-4056535.jpeg",
			URL:         "#",
			Tags:        []string{"Yoga", "Movement", "Body-based healing"},
		},
		{
			ID:          "6",
			Title:       "Supporting a Loved One with PTSD",
			Type:        ResourceTypeArticle,
			Category:    ResourceCategorySupport,
			Description: "Practical advice for family members and friends supporting someone with PTSD.",
			ImageURL:    "https://images.pexels.com/photos/6647037/pexels-photo-6647037.jpeg",
			URL:         "#",
			Tags:        []string{"Family support", "PTSD", "Relationships"},
		},
		{
			ID:          "7",
			Title:       "Journaling Prompts for Trauma Recovery",
			Type:        ResourceTypeArticle,
			Category:    ResourceCategoryActivity,
			Description: "30 therapeutic journaling prompts to support your healing journey.",
			ImageURL:    "https://images.pexels.com/photos/636243/pexels-photo-636243.jpeg",
			URL:         "#",
			Tags:        []string{"Journaling", "Self-reflection", "Writing therapy"},
		},
		{
			ID:          "8",
			Title:       "Understanding Triggers and How to Manage Them",
			Type:        ResourceTypeVideo,
			Category:    ResourceCategoryEducational,
			Description: "Expert explanation of what triggers are and practical strategies to identify and manage them.",
			ImageURL:    "https://images.pexels.com/photos/3755761/pexels-photo-3755761.jpeg",
			URL:         "#",
			Tags:        []string{"Triggers", "Coping strategies", "Emotional regulation"},
		},
	}
}

func seedEvents() []Event {
	return []Event{
		{
			ID:              "1",
			Title:           "Group Therapy Session",
			StartsAt:        time.Date(2025, time.April, 15, 18, 0, 0, 0, time.UTC),
			EndsAt:          time.Date(2025, time.April, 15, 19, 30, 0, 0, time.UTC),
			Type:            EventTypeGroup,
			Location:        "Virtual (Zoom)",
			Facilitator:     "Dr. Sarah Johnson",
			Participants:    8,
			MaxParticipants: 12,
			Description:     "A guided group session focusing on coping strategies for trauma survivors.",
			IsVirtual:       true,
		},
		{
			ID:              "2",
			Title:           "Trauma-Informed Yoga",
			StartsAt:        time.Date(2025, time.April, 17, 10, 0, 0, 0, time.UTC),
			EndsAt:          time.Date(2025, time.April, 17, 11, 0, 0, 0, time.UTC),
			Type:            EventTypeActivity,
			Location:        "Virtual (Zoom)",
			Facilitator:     "Emily Chen, Certified Yoga Instructor",
			Participants:    15,
			MaxParticipants: 20,
			Description:     "A gentle yoga practice designed specifically for trauma survivors.",
			IsVirtual:       true,
		},
		{
			ID:              "3",
			Title:           "Understanding PTSD Workshop",
			StartsAt:        time.Date(2025, time.April, 20, 14, 0, 0, 0, time.UTC),
			EndsAt:          time.Date(2025, time.April, 20, 16, 0, 0, 0, time.UTC),
			Type:            EventTypeEducational,
			Location:        "Virtual (Zoom)",
			Facilitator:     "Dr. Michael Rodriguez",
			Participants:    25,
			MaxParticipants: 50,
			Description:     "An educational workshop explaining PTSD, its symptoms, and evidence-based treatments.",
			IsVirtual:       true,
		},
		{
			ID:              "4",
			Title:           "Mindfulness Meditation",
			StartsAt:        time.Date(2025, time.April, 22, 19, 0, 0, 0, time.UTC),
			EndsAt:          time.Date(2025, time.April, 22, 20, 0, 0, 0, time.UTC),
			Type:            EventTypeActivity,
			Location:        "Virtual (Zoom)",
			Facilitator:     "Alex Thompson",
			Participants:    12,
			MaxParticipants: 30,
			Description:     "A guided meditation session focusing on grounding techniques and present-moment awareness.",
			IsVirtual:       true,
		},
		{
			ID:              "5",
			Title:           "Art Therapy Workshop",
			StartsAt:        time.Date(2025, time.April, 25, 15, 0, 0, 0, time.UTC),
			EndsAt:          time.Date(2025, time.April, 25, 17, 0, 0, 0, time.UTC),
			Type:            EventTypeActivity,
			Location:        "Virtual (Zoom)",
			Facilitator:     "Lisa Garcia, Art Therapist",
			Participants:    10,
			MaxParticipants: 15,
			Description:     "Express and process emotions through guided art activities. No artistic experience needed.",
			IsVirtual:       true,
		},
		{
			ID:              "6",
			Title:           "Support for Supporters",
			StartsAt:        time.Date(2025, time.April, 27, 18, 30, 0, 0, time.UTC),
			EndsAt:          time.Date(2025, time.April, 27, 20, 0, 0, 0, time.UTC),
			Type:            EventTypeGroup,
			Location:        "Virtual (Zoom)",
			Facilitator:     "Dr. James Wilson",
			Participants:    6,
			MaxParticipants: 15,
			Description:     "A session designed for friends and family members supporting loved ones with trauma.",
			IsVirtual:       true,
		},
	}
}
