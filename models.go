package main

import (
	"time"
)

// User represents an authenticated community member
type User struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Avatar   string      `json:"avatar,omitempty"`
	JoinDate time.Time   `json:"join_date"`
	Prefs    Preferences `json:"preferences"`
}

// Preferences is the user's settings sub-record
type Preferences struct {
	Notifications bool   `json:"notifications"`
	DarkMode      bool   `json:"dark_mode"`
	Privacy       string `json:"privacy"` // public / private / friends
}

func DefaultPreferences() Preferences {
	return Preferences{
		Notifications: true,
		DarkMode:      false,
		Privacy:       PrivacyPublic,
	}
}

const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
	PrivacyFriends = "friends"
)

// ChatRoom is a support group listing
type ChatRoom struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"` // General / Specific / Activity
	Participants int      `json:"participants"`
	IsVREnabled  bool     `json:"is_vr_enabled"`
	Tags         []string `json:"tags"`
}

// Resource is a library entry (article, video or book)
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`     // article / video / book
	Category    string   `json:"category"` // educational / practical / activity / support
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
}

// Event is a scheduled session on the community calendar
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Type            string    `json:"type"` // group / activity / educational
	Location        string    `json:"location"`
	Facilitator     string    `json:"facilitator"`
	Participants    int       `json:"participants"`
	MaxParticipants int       `json:"max_participants"`
	Description     string    `json:"description"`
	IsVirtual       bool      `json:"is_virtual"`
}

// Closed enumerations for the category/type filters. "all" (capitalized to
// "All" on the rooms page) is the sentinel meaning "filter inactive".
const (
	RoomCategoryAll      = "All"
	RoomCategoryGeneral  = "General"
	RoomCategorySpecific = "Specific"
	RoomCategoryActivity = "Activity"
)

const (
	FilterAll = "all"

	ResourceTypeArticle = "article"
	ResourceTypeVideo   = "video"
	ResourceTypeBook    = "book"

	ResourceCategoryEducational = "educational"
	ResourceCategoryPractical   = "practical"
	ResourceCategoryActivity    = "activity"
	ResourceCategorySupport     = "support"

	EventTypeGroup       = "group"
	EventTypeActivity    = "activity"
	EventTypeEducational = "educational"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial update: nil fields keep their prior value.
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Avatar        *string `json:"avatar"`
	Notifications *bool   `json:"notifications"`
	DarkMode      *bool   `json:"dark_mode"`
	Privacy       *string `json:"privacy"`
}
