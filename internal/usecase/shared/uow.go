package shared

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	RoomBookings() RoomBookingRepository
	RestaurantBookings() RestaurantBookingRepository
	Locks() ResourceLocker
	Ledger() CapacityLedger
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// ResourceLocker reads a row with SELECT ... FOR UPDATE. The lock is held
// until the surrounding transaction ends.
type ResourceLocker interface {
	LockRoom(ctx context.Context, db db.DBTX, id uuid.UUID) (*lodging.Room, error)
	LockTimeSlot(ctx context.Context, db db.DBTX, id uuid.UUID) (*dining.TimeSlot, error)
	LockDiningRoom(ctx context.Context, db db.DBTX, id uuid.UUID) (*dining.DiningRoom, error)
	LockRoomBooking(ctx context.Context, db db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	LockRestaurantBooking(ctx context.Context, db db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
}

// CapacityLedger answers how much of a resource is already consumed in a window.
type CapacityLedger interface {
	ConsumedRoom(ctx context.Context, db db.DBTX, roomID uuid.UUID, stay booking.StayWindow) (int, error)
	ConsumedDiningRoom(ctx context.Context, db db.DBTX, diningRoomID uuid.UUID, w booking.DiningWindow) (int, error)
	ConsumedTimeSlot(ctx context.Context, db db.DBTX, slotID uuid.UUID, date time.Time) (int, error)
}

type CommandReads interface {
	MealPackageByID(ctx context.Context, id uuid.UUID) (*dining.MealPackage, error)
}

type RoomBookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *lodging.RoomBooking) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type RestaurantBookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *dining.RestaurantBooking) error
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch RestaurantBookingPatch) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db db.DBTX, job NotificationJob) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
