package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// -----------------------------
// Helper functions
// -----------------------------

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// getUserIDFromContext expects AuthMiddleware to set "user_id" (string) in context.
// If not present -> unauthorized.
func getUserIDFromContext(c *gin.Context) (string, bool) {
	uid, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := uid.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// parseFlag reads a boolean query param ("true"/"false"/"1"/"0"); empty means false.
func parseFlag(c *gin.Context, name string) (bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return false, true
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return val, true
}

func parseSort(c *gin.Context, allowed ...SortKey) (SortKey, bool) {
	raw := SortKey(c.Query("sort"))
	if raw == SortDefault {
		return SortDefault, true
	}
	for _, k := range allowed {
		if raw == k {
			return raw, true
		}
	}
	return SortDefault, false
}

func parseChoice(c *gin.Context, name string, allowed ...string) (string, bool) {
	raw := c.Query(name)
	if raw == "" {
		return "", true
	}
	for _, v := range allowed {
		if raw == v {
			return raw, true
		}
	}
	return "", false
}

// -----------------------------
// Support groups (chat rooms)
// -----------------------------

// GET /api/rooms?search=&category=&vr_only=&sort=
func GetRooms(c *gin.Context) {
	view := NewRoomView()
	view.SetSearch(c.Query("search"))

	category, ok := parseChoice(c, "category", RoomCategoryAll, RoomCategoryGeneral, RoomCategorySpecific, RoomCategoryActivity)
	if !ok {
		jsonError(c, http.StatusBadRequest, "category must be one of: All, General, Specific, Activity")
		return
	}
	if category != "" {
		view.SetCategory(category)
	}

	vrOnly, ok := parseFlag(c, "vr_only")
	if !ok {
		jsonError(c, http.StatusBadRequest, "vr_only must be a boolean")
		return
	}
	view.SetFlag(vrOnly)

	sortKey, ok := parseSort(c, SortPopular, SortNewest, SortAlphabetical)
	if !ok {
		jsonError(c, http.StatusBadRequest, "sort must be one of: popular, newest, alphabetical")
		return
	}
	if sortKey != SortDefault {
		view.SetSort(sortKey)
	}

	rooms := ProjectRooms(Rooms.All(), view)
	c.JSON(http.StatusOK, gin.H{"count": len(rooms), "rooms": rooms})
}

// GET /api/rooms/:id
func GetRoom(c *gin.Context) {
	room, ok := Rooms.Find(c.Param("id"), func(r ChatRoom) string { return r.ID })
	if !ok {
		jsonError(c, http.StatusNotFound, "room not found")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GET /api/rooms/:id/vr
// Placeholder VR room view: the immersive session itself lives in an
// external service, this just hands out the room descriptor.
func GetVRRoom(c *gin.Context) {
	room, ok := Rooms.Find(c.Param("id"), func(r ChatRoom) string { return r.ID })
	if !ok {
		jsonError(c, http.StatusNotFound, "room not found")
		return
	}
	if !room.IsVREnabled {
		jsonError(c, http.StatusBadRequest, "room is not VR enabled")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":    room,
		"message": "VR session support is coming soon",
	})
}

// -----------------------------
// Resources library
// -----------------------------

// GET /api/resources?search=&type=&category=&saved_only=&sort=
func GetResources(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	view := NewResourceView()
	view.SetSearch(c.Query("search"))

	typ, ok := parseChoice(c, "type", FilterAll, ResourceTypeArticle, ResourceTypeVideo, ResourceTypeBook)
	if !ok {
		jsonError(c, http.StatusBadRequest, "type must be one of: all, article, video, book")
		return
	}
	if typ != "" {
		view.SetType(typ)
	}

	category, ok := parseChoice(c, "category", FilterAll, ResourceCategoryEducational, ResourceCategoryPractical, ResourceCategoryActivity, ResourceCategorySupport)
	if !ok {
		jsonError(c, http.StatusBadRequest, "category must be one of: all, educational, practical, activity, support")
		return
	}
	if category != "" {
		view.SetCategory(category)
	}

	savedOnly, ok := parseFlag(c, "saved_only")
	if !ok {
		jsonError(c, http.StatusBadRequest, "saved_only must be a boolean")
		return
	}
	view.SetFlag(savedOnly)

	sortKey, ok := parseSort(c, SortNewest, SortAlphabetical)
	if !ok {
		jsonError(c, http.StatusBadRequest, "sort must be one of: newest, alphabetical")
		return
	}
	if sortKey != SortDefault {
		view.SetSort(sortKey)
	}

	saved := Memberships.ForUser(userID, MembershipResources)
	resources := ProjectResources(Resources.All(), view, saved.Contains)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(resources),
		"saved_count": saved.Len(),
		"resources":   resources,
	})
}

// GET /api/resources/saved
func GetSavedResources(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	saved := Memberships.ForUser(userID, MembershipResources)
	view := NewResourceView()
	view.SetFlag(true)
	resources := ProjectResources(Resources.All(), view, saved.Contains)
	c.JSON(http.StatusOK, gin.H{"count": len(resources), "resources": resources})
}

// POST /api/resources/:id/save  (toggle)
func ToggleSavedResource(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	saved := Memberships.ForUser(userID, MembershipResources)
	nowSaved := saved.Toggle(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"id":          c.Param("id"),
		"saved":       nowSaved,
		"saved_count": saved.Len(),
	})
}

// DELETE /api/resources/saved
func ClearSavedResources(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	Memberships.ForUser(userID, MembershipResources).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "saved resources cleared"})
}

// -----------------------------
// Events calendar
// -----------------------------

// GET /api/events?search=&type=&registered_only=&sort=
func GetEvents(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	view := NewEventView()
	view.SetSearch(c.Query("search"))

	typ, ok := parseChoice(c, "type", FilterAll, EventTypeGroup, EventTypeActivity, EventTypeEducational)
	if !ok {
		jsonError(c, http.StatusBadRequest, "type must be one of: all, group, activity, educational")
		return
	}
	if typ != "" {
		view.SetType(typ)
	}

	registeredOnly, ok := parseFlag(c, "registered_only")
	if !ok {
		jsonError(c, http.StatusBadRequest, "registered_only must be a boolean")
		return
	}
	view.SetFlag(registeredOnly)

	sortKey, ok := parseSort(c, SortChronological, SortPopular, SortNewest, SortAlphabetical)
	if !ok {
		jsonError(c, http.StatusBadRequest, "sort must be one of: chronological, popular, newest, alphabetical")
		return
	}
	if sortKey != SortDefault {
		view.SetSort(sortKey)
	}

	registered := Memberships.ForUser(userID, MembershipEvents)
	events := ProjectEvents(Events.All(), view, registered.Contains)
	c.JSON(http.StatusOK, gin.H{
		"count":            len(events),
		"registered_count": registered.Len(),
		"events":           events,
	})
}

// GET /api/events/calendar?date=YYYY-MM-DD
func GetCalendar(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		jsonError(c, http.StatusBadRequest, "missing date (use YYYY-MM-DD)")
		return
	}
	day, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use YYYY-MM-DD)")
		return
	}

	registered := Memberships.ForUser(userID, MembershipEvents)
	events := EventsOn(Events.All(), day, NewEventView(), registered.Contains)

	days := EventDays(Events.All())
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Format("2006-01-02"))
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   dateParam,
		"count":  len(events),
		"events": events,
		"dates":  dates,
	})
}

// POST /api/events/:id/register  (toggle)
func ToggleEventRegistration(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	registered := Memberships.ForUser(userID, MembershipEvents)
	nowRegistered := registered.Toggle(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"id":               c.Param("id"),
		"registered":       nowRegistered,
		"registered_count": registered.Len(),
	})
}

// GET /api/events/registrations
func GetRegisteredEvents(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	registered := Memberships.ForUser(userID, MembershipEvents)
	view := NewEventView()
	view.SetFlag(true)
	events := ProjectEvents(Events.All(), view, registered.Contains)
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events, "ids": registered.IDs()})
}

// DELETE /api/events/registrations
func ClearEventRegistrations(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	Memberships.ForUser(userID, MembershipEvents).Clear()
	c.JSON(http.StatusOK, gin.H{"message": "registrations cleared"})
}

// -----------------------------
// Profile
// -----------------------------

// GET /api/profile
func GetProfile(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := Store.Current(userID)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/profile
func UpdateProfile(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	user, err := Store.UpdateProfile(userID, req)
	if err != nil {
		authErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
