package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:repo_test_%s?mode=memory&cache=shared", name), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestUserRepository_CreateAndLockout(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{ID: "u-1", Email: "  Guest@Example.com ", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, "guest@example.com", u.Email)

	dup := &domain.User{ID: "u-2", Email: "guest@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrDuplicate)

	until := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	locked := domain.LockoutState{FailedAttempts: 5, Locked: true, LockUntil: &until}
	require.NoError(t, repo.SaveLockout(ctx, "u-1", domain.LockoutState{}, locked))

	got, err := repo.GetByEmail(ctx, "GUEST@example.com")
	require.NoError(t, err)
	assert.Equal(t, 5, got.FailedLoginAttempts)
	assert.True(t, got.AccountLocked)
	require.NotNil(t, got.LockUntil)
	assert.True(t, got.LockUntil.Equal(until))

	require.NoError(t, repo.SaveLockout(ctx, "u-1", locked, domain.LockoutState{}))
	got, err = repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Zero(t, got.FailedLoginAttempts)
	assert.False(t, got.AccountLocked)
	assert.Nil(t, got.LockUntil)

	assert.True(t, IsNotFound(repo.SaveLockout(ctx, "missing", domain.LockoutState{}, domain.LockoutState{})))
}

func TestUserRepository_SaveLockoutRejectsStaleCounter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u-1", Email: "guest@example.com", PasswordHash: "hash"}))

	// two wrong passwords read the same zero counter; the second write loses
	fresh := domain.LockoutState{}
	require.NoError(t, repo.SaveLockout(ctx, "u-1", fresh, domain.LockoutState{FailedAttempts: 1}))
	assert.ErrorIs(t, repo.SaveLockout(ctx, "u-1", fresh, domain.LockoutState{FailedAttempts: 1}), ErrRevisionConflict)

	require.NoError(t, repo.SaveLockout(ctx, "u-1", domain.LockoutState{FailedAttempts: 1}, domain.LockoutState{FailedAttempts: 2}))
	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.FailedLoginAttempts)
}

func TestCartRepository_RevisionGuard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	cart := &domain.Cart{
		ID:     "c-1",
		UserID: "u-1",
		Items: []domain.CartItem{{
			ItemKey:       "k-1",
			RoomTypeID:    "r-1",
			PricePerNight: decimal.RequireFromString("120.00"),
			CheckInDate:   "2024-07-01",
			CheckOutDate:  "2024-07-05",
			Nights:        4,
			TotalPrice:    decimal.RequireFromString("480.00"),
		}},
		TotalPrice: decimal.RequireFromString("480.00"),
	}
	require.NoError(t, repo.Save(ctx, cart))
	assert.EqualValues(t, 1, cart.Revision)

	stale, err := repo.GetByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, stale.Items, 1)
	assert.True(t, stale.TotalPrice.Equal(decimal.NewFromInt(480)))
	assert.True(t, stale.Items[0].PricePerNight.Equal(decimal.NewFromInt(120)))

	cart.Items = nil
	cart.TotalPrice = decimal.Zero
	require.NoError(t, repo.Save(ctx, cart))
	assert.EqualValues(t, 2, cart.Revision)

	stale.Items = append(stale.Items, stale.Items[0])
	assert.ErrorIs(t, repo.Save(ctx, stale), ErrRevisionConflict)

	second := &domain.Cart{ID: "c-2", UserID: "u-1"}
	assert.ErrorIs(t, repo.Save(ctx, second), ErrRevisionConflict)

	assert.ErrorIs(t, repo.Delete(ctx, "c-1", 1), ErrRevisionConflict)
	require.NoError(t, repo.Delete(ctx, "c-1", 2))
	_, err = repo.GetByUserID(ctx, "u-1")
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(repo.Delete(ctx, "c-1", 2)))
}

func TestCartRepository_DeleteStale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Cart{ID: "c-old", UserID: "u-old"}))
	require.NoError(t, db.Model(&cartModel{}).Where("id = ?", "c-old").
		Update("updated_at", time.Now().Add(-60*24*time.Hour)).Error)
	require.NoError(t, repo.Save(ctx, &domain.Cart{ID: "c-new", UserID: "u-new"}))

	owners, err := repo.DeleteStale(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"u-old"}, owners)

	_, err = repo.GetByUserID(ctx, "u-old")
	assert.True(t, IsNotFound(err))
	_, err = repo.GetByUserID(ctx, "u-new")
	assert.NoError(t, err)

	owners, err = repo.DeleteStale(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestBookingRepository_IdempotentCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	first := &domain.Booking{
		ID:             "b-1",
		UserID:         "u-1",
		IdempotencyKey: domain.BookingIdempotencyKey("c-1", "k-1"),
		RoomTypeID:     "r-1",
		CheckInDate:    "2024-07-01",
		CheckOutDate:   "2024-07-05",
		Nights:         4,
		PricePerNight:  decimal.RequireFromString("120.00"),
		TotalPrice:     decimal.RequireFromString("480.00"),
		BookingStatus:  domain.BookingConfirmed,
	}
	require.NoError(t, repo.Create(ctx, first))

	retry := *first
	retry.ID = "b-2"
	require.NoError(t, repo.Create(ctx, &retry))
	assert.Equal(t, "b-1", retry.ID)

	list, err := repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.BookingConfirmed, list[0].BookingStatus)

	assert.True(t, IsNotFound(repo.DeleteForUser(ctx, "b-1", "someone-else")))
	require.NoError(t, repo.DeleteForUser(ctx, "b-1", "u-1"))

	list, err = repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHotelRepository_ListAndSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHotelRepository(db)
	ctx := context.Background()

	for i, h := range []struct {
		location string
		price    string
	}{
		{"Lisbon, Alfama", "199"},
		{"Porto, Ribeira", "299"},
		{"Lisbon, Belem", "399"},
	} {
		require.NoError(t, repo.Create(ctx, &domain.Hotel{
			ID:            fmt.Sprintf("h-%d", i+1),
			Name:          fmt.Sprintf("Hotel %d", i+1),
			Location:      h.location,
			PricePerNight: decimal.RequireFromString(h.price),
		}))
	}

	page, next, err := repo.List(ctx, 2, "")
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "h-2", next)

	page, next, err = repo.List(ctx, 2, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "h-3", page[0].ID)
	assert.Empty(t, next)

	maxPrice := decimal.RequireFromString("300")
	found, err := repo.Search(ctx, domain.HotelFilter{Location: "lisbon", MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "h-1", found[0].ID)

	minPrice := decimal.RequireFromString("250")
	found, err = repo.Search(ctx, domain.HotelFilter{MinPrice: &minPrice})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestRoomRepository_Availability(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Room{
		ID: "r-1", HotelID: "h-1", RoomTypeName: "Suite",
		Price: decimal.RequireFromString("398"), Total: 10, Available: 10,
	}))

	room, err := repo.UpdateAvailability(ctx, "r-1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, room.Available)

	_, err = repo.UpdateAvailability(ctx, "missing", 1)
	assert.True(t, IsNotFound(err))

	rooms, err := repo.ListByHotel(ctx, "h-1")
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestFavoriteRepository_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &domain.Favorite{ID: "f-1", UserID: "u-1", ItemID: "h-1", ItemType: domain.ItemHotel}))
	assert.ErrorIs(t, repo.Add(ctx, &domain.Favorite{ID: "f-2", UserID: "u-1", ItemID: "h-1", ItemType: domain.ItemHotel}), ErrDuplicate)
	require.NoError(t, repo.Add(ctx, &domain.Favorite{ID: "f-3", UserID: "u-1", ItemID: "h-1", ItemType: domain.ItemAttraction}))

	favs, err := repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, favs, 2)

	require.NoError(t, repo.Remove(ctx, "u-1", "h-1", domain.ItemHotel))
	assert.True(t, IsNotFound(repo.Remove(ctx, "u-1", "h-1", domain.ItemHotel)))
}

func TestAttractionRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttractionRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Attraction{ID: "a-1", HotelID: "h-1", Name: "Castle", Distance: 0.8}))
	require.NoError(t, repo.Create(ctx, &domain.Attraction{ID: "a-2", HotelID: "h-1", Name: "Beach", Distance: 12}))
	require.NoError(t, repo.Create(ctx, &domain.Attraction{ID: "a-3", HotelID: "h-2", Name: "Museum", Distance: 1.5}))

	limit := 2.0
	near, err := repo.Search(ctx, "h-1", &limit)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "a-1", near[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestHotelRepository_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := setupTestDB(t)
	repo := NewHotelRepository(db)
	ctx := context.Background()

	for i, loc := range []string{"Auckland, New Zealand", "100% Pure, Wanaka", "Bay_of_Islands"} {
		require.NoError(t, repo.Create(ctx, &domain.Hotel{
			ID:            fmt.Sprintf("h-%d", i+1),
			Name:          fmt.Sprintf("Hotel %d", i+1),
			Location:      loc,
			PricePerNight: decimal.NewFromInt(99),
		}))
	}

	found, err := repo.Search(ctx, domain.HotelFilter{Location: "%"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "h-2", found[0].ID)

	found, err = repo.Search(ctx, domain.HotelFilter{Location: "_"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "h-3", found[0].ID)

	found, err = repo.Search(ctx, domain.HotelFilter{Location: `\`})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "auckland", escapeLike("auckland"))
}
