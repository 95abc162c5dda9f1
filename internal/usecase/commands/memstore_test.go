//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sync"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/capacity"
	"booking-engine/internal/domain/dining"
	"booking-engine/internal/domain/lodging"
	"booking-engine/internal/domain/notification"
	"booking-engine/internal/domain/user"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/commands"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type roomRecord struct {
	roomID uuid.UUID
	userID *uuid.UUID
	stay   booking.StayWindow
	status booking.Status
}

type restaurantRecord struct {
	userID          *uuid.UUID
	slotID          uuid.UUID
	diningRoomID    *uuid.UUID
	window          booking.DiningWindow
	guests          int
	status          booking.Status
	specialRequests *string
}

type memData struct {
	rooms       map[uuid.UUID]lodging.Room
	slots       map[uuid.UUID]dining.TimeSlot
	diningRooms map[uuid.UUID]dining.DiningRoom
	packages    map[uuid.UUID]dining.MealPackage
	roomBooks   map[uuid.UUID]roomRecord
	restBooks   map[uuid.UUID]restaurantRecord
	users       map[uuid.UUID]*user.User
	lastLogin   map[uuid.UUID]time.Time
}

func (d memData) clone() memData {
	return memData{
		rooms:       maps.Clone(d.rooms),
		slots:       maps.Clone(d.slots),
		diningRooms: maps.Clone(d.diningRooms),
		packages:    maps.Clone(d.packages),
		roomBooks:   maps.Clone(d.roomBooks),
		restBooks:   maps.Clone(d.restBooks),
		users:       maps.Clone(d.users),
		lastLogin:   maps.Clone(d.lastLogin),
	}
}

// memUoW serializes every transaction, which is what the row locks guarantee
// for transactions touching the same resource.
type memUoW struct {
	mu   sync.Mutex
	data memData
	txs  int
}

func newMemUoW() *memUoW {
	return &memUoW{data: memData{
		rooms:       map[uuid.UUID]lodging.Room{},
		slots:       map[uuid.UUID]dining.TimeSlot{},
		diningRooms: map[uuid.UUID]dining.DiningRoom{},
		packages:    map[uuid.UUID]dining.MealPackage{},
		roomBooks:   map[uuid.UUID]roomRecord{},
		restBooks:   map[uuid.UUID]restaurantRecord{},
		users:       map[uuid.UUID]*user.User{},
		lastLogin:   map[uuid.UUID]time.Time{},
	}}
}

// Within runs fn on a copy under one global mutex, so transactions never
// interleave. It stands in for row locks only in ordering, not in granularity.
func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.txs++

	work := u.data.clone()
	if err := fn(ctx, &memTx{data: &work}); err != nil {
		return err
	}
	u.data = work
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) snapshot() memData {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.data.clone()
}

func (u *memUoW) addRoom(r lodging.Room) {
	u.data.rooms[r.ID] = r
}

func (u *memUoW) addSlot(s dining.TimeSlot) {
	u.data.slots[s.ID] = s
}

func (u *memUoW) addDiningRoom(r dining.DiningRoom) {
	u.data.diningRooms[r.ID] = r
}

func (u *memUoW) addPackage(p dining.MealPackage) {
	u.data.packages[p.ID] = p
}

func (u *memUoW) addRoomBooking(id uuid.UUID, rec roomRecord) {
	u.data.roomBooks[id] = rec
}

func (u *memUoW) addRestaurantBooking(id uuid.UUID, rec restaurantRecord) {
	u.data.restBooks[id] = rec
}

func (u *memUoW) addUser(usr *user.User) {
	u.data.users[usr.ID()] = usr
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type memTx struct {
	data *memData
}

func (t *memTx) RoomBookings() shared.RoomBookingRepository             { return memRoomBookings{t.data} }
func (t *memTx) RestaurantBookings() shared.RestaurantBookingRepository { return memRestaurantBookings{t.data} }
func (t *memTx) Locks() shared.ResourceLocker                           { return memLocks{t.data} }
func (t *memTx) Ledger() shared.CapacityLedger                          { return memLedger{t.data} }
func (t *memTx) Users() shared.UserRepository                           { return memUsers{t.data} }
func (t *memTx) Reads() shared.CommandReads                             { return memReads{t.data} }
func (t *memTx) DB() db.DBTX                                            { return nil }

type memLocks struct{ d *memData }

func (l memLocks) LockRoom(_ context.Context, _ db.DBTX, id uuid.UUID) (*lodging.Room, error) {
	r, ok := l.d.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return &r, nil
}

func (l memLocks) LockTimeSlot(_ context.Context, _ db.DBTX, id uuid.UUID) (*dining.TimeSlot, error) {
	s, ok := l.d.slots[id]
	if !ok {
		return nil, notFound("time slot not found")
	}
	return &s, nil
}

func (l memLocks) LockDiningRoom(_ context.Context, _ db.DBTX, id uuid.UUID) (*dining.DiningRoom, error) {
	r, ok := l.d.diningRooms[id]
	if !ok {
		return nil, notFound("dining room not found")
	}
	return &r, nil
}

func (l memLocks) LockRoomBooking(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := l.d.roomBooks[id]
	if !ok {
		return nil, notFound("room booking not found")
	}
	return &shared.BookingSnapshot{ID: id, UserID: b.userID, Status: b.status, Date: b.stay.CheckIn()}, nil
}

func (l memLocks) LockRestaurantBooking(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := l.d.restBooks[id]
	if !ok {
		return nil, notFound("restaurant booking not found")
	}
	return &shared.BookingSnapshot{ID: id, UserID: b.userID, Status: b.status, Date: b.window.Date()}, nil
}

type memLedger struct{ d *memData }

func (l memLedger) ConsumedRoom(_ context.Context, _ db.DBTX, roomID uuid.UUID, stay booking.StayWindow) (int, error) {
	var records []capacity.StayRecord
	for _, b := range l.d.roomBooks {
		if b.roomID == roomID {
			records = append(records, capacity.StayRecord{Window: b.stay, Status: b.status})
		}
	}
	return capacity.ConsumedRoom(records, stay), nil
}

func (l memLedger) ConsumedDiningRoom(_ context.Context, _ db.DBTX, diningRoomID uuid.UUID, w booking.DiningWindow) (int, error) {
	var records []capacity.DiningRecord
	for _, b := range l.d.restBooks {
		if b.diningRoomID != nil && *b.diningRoomID == diningRoomID {
			records = append(records, capacity.DiningRecord{Window: b.window, GuestCount: b.guests, Status: b.status})
		}
	}
	return capacity.ConsumedDining(records, w), nil
}

func (l memLedger) ConsumedTimeSlot(_ context.Context, _ db.DBTX, slotID uuid.UUID, date time.Time) (int, error) {
	n := 0
	for _, b := range l.d.restBooks {
		if b.slotID == slotID && b.window.Date().Equal(booking.Day(date)) && capacity.IsActiveDining(b.status) {
			n += b.guests
		}
	}
	return n, nil
}

type memReads struct{ d *memData }

func (r memReads) MealPackageByID(_ context.Context, id uuid.UUID) (*dining.MealPackage, error) {
	p, ok := r.d.packages[id]
	if !ok {
		return nil, notFound("meal package not found")
	}
	return &p, nil
}

type memRoomBookings struct{ d *memData }

func (r memRoomBookings) Create(_ context.Context, _ db.DBTX, b *lodging.RoomBooking) error {
	r.d.roomBooks[b.ID()] = roomRecord{roomID: b.RoomID(), userID: b.UserID(), stay: b.Stay(), status: b.Status()}
	return nil
}

func (r memRoomBookings) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	b, ok := r.d.roomBooks[id]
	if !ok {
		return notFound("room booking not found")
	}
	b.status = status
	r.d.roomBooks[id] = b
	return nil
}

func (r memRoomBookings) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	delete(r.d.roomBooks, id)
	return nil
}

type memRestaurantBookings struct{ d *memData }

func (r memRestaurantBookings) Create(_ context.Context, _ db.DBTX, b *dining.RestaurantBooking) error {
	slot := r.d.slots[b.TimeSlotID()]
	r.d.restBooks[b.ID()] = restaurantRecord{
		userID:          b.UserID(),
		slotID:          b.TimeSlotID(),
		diningRoomID:    b.DiningRoomID(),
		window:          slot.Window(b.Date()),
		guests:          b.GuestCount().Int(),
		status:          b.Status(),
		specialRequests: b.SpecialRequests().Ptr(),
	}
	return nil
}

func (r memRestaurantBookings) Update(_ context.Context, _ db.DBTX, id uuid.UUID, patch shared.RestaurantBookingPatch) error {
	b, ok := r.d.restBooks[id]
	if !ok {
		return notFound("restaurant booking not found")
	}
	if patch.Status != nil {
		b.status = *patch.Status
	}
	if patch.SpecialRequests != nil {
		b.specialRequests = patch.SpecialRequests
	}
	r.d.restBooks[id] = b
	return nil
}

func (r memRestaurantBookings) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	delete(r.d.restBooks, id)
	return nil
}

type memUsers struct{ d *memData }

func (r memUsers) Create(_ context.Context, _ db.DBTX, u *user.User) error {
	for _, existing := range r.d.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.d.users[u.ID()] = u
	return nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	if _, ok := r.d.users[userID]; !ok {
		return notFound("user not found")
	}
	r.d.lastLogin[userID] = time.Now()
	return nil
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []notification.Event
}

func (e *recordingEmitter) Emit(ev notification.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *recordingEmitter) types() []notification.EventType {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]notification.EventType, len(e.events))
	for i, ev := range e.events {
		out[i] = ev.Type
	}
	return out
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (o *recordingObserver) ObserveReservation(_ notification.ResourceKind, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcomes == nil {
		o.outcomes = map[string]int{}
	}
	o.outcomes[outcome]++
}

func (o *recordingObserver) count(outcome string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.outcomes[outcome]
}

// memVerifier accepts each issued code exactly once.
type memVerifier struct {
	mu    sync.Mutex
	codes map[string]string
}

func (v *memVerifier) issue(phone, code string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.codes == nil {
		v.codes = map[string]string{}
	}
	v.codes[phone] = code
}

func (v *memVerifier) Check(_ context.Context, phone, code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.codes[phone] != code {
		return commands.ErrCodeMismatch
	}
	return nil
}

func (v *memVerifier) pending(phone string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.codes[phone]
	return ok
}

func (v *memVerifier) Verify(_ context.Context, phone, code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.codes[phone] != code {
		return commands.ErrCodeMismatch
	}
	delete(v.codes, phone)
	return nil
}
