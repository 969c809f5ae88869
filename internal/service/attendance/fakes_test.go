package attendance

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===== Record store =====

type txState struct {
	unlocks []func()
	staged  map[string]attendance.Record
}

type txStateKey struct{}

// memoryStore mimics the row lock of the Postgres repository: a key stays
// locked from LockOrCreate until its transaction ends.
type memoryStore struct {
	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	records map[string]attendance.Record
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		locks:   make(map[string]*sync.Mutex),
		records: make(map[string]attendance.Record),
	}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format(time.DateOnly)
}

func (m *memoryStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	state := &txState{staged: make(map[string]attendance.Record)}
	defer func() {
		for i := len(state.unlocks) - 1; i >= 0; i-- {
			state.unlocks[i]()
		}
	}()

	if err := fn(context.WithValue(ctx, txStateKey{}, state)); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, rec := range state.staged {
		m.records[key] = rec
		m.saves++
	}
	return nil
}

func (m *memoryStore) LockOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, bool, error) {
	state, ok := ctx.Value(txStateKey{}).(*txState)
	if !ok {
		return attendance.Record{}, false, errors.New("LockOrCreate outside transaction")
	}
	key := recordKey(employeeID, date)

	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	state.unlocks = append(state.unlocks, lock.Unlock)

	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[key]; ok {
		return rec, false, nil
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.DailyStatusAbsent,
		WorkHours:  decimal.Zero,
	}
	state.staged[key] = rec
	return rec, true, nil
}

func (m *memoryStore) Save(ctx context.Context, rec attendance.Record) error {
	state, ok := ctx.Value(txStateKey{}).(*txState)
	if !ok {
		return errors.New("Save outside transaction")
	}
	state.staged[recordKey(rec.EmployeeID, rec.Date)] = rec
	return nil
}

func (m *memoryStore) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attendance.Record
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if rec, ok := m.records[recordKey(employeeID, d)]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memoryStore) get(employeeID string, date time.Time) (attendance.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[recordKey(employeeID, date)]
	return rec, ok
}

func (m *memoryStore) put(rec attendance.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[recordKey(rec.EmployeeID, rec.Date)] = rec
}

// ===== Collaborators =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByMatri(ctx context.Context, matri string) (employee.Employee, error) {
	emp, ok := f.employees[matri]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeLeaveRepo struct {
	onLeave map[string]bool
}

func (f *fakeLeaveRepo) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	return f.onLeave[employeeID+"|"+date.Format(time.DateOnly)], nil
}

type fakeSettings struct {
	setting company.Setting
	err     error
}

func (f *fakeSettings) Get(ctx context.Context) (company.Setting, error) {
	return f.setting, f.err
}

type recordingNotifier struct {
	mu       sync.Mutex
	recorded []attendance.RecordedEvent
	outside  []attendance.OutsideAreaEvent
}

func (n *recordingNotifier) AttendanceRecorded(ctx context.Context, event attendance.RecordedEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recorded = append(n.recorded, event)
}

func (n *recordingNotifier) OutsideArea(ctx context.Context, event attendance.OutsideAreaEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outside = append(n.outside, event)
}

// ===== Fixture =====

func mustTimeOfDay(s string) attendance.TimeOfDay {
	t, err := attendance.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func defaultShifts() attendance.ShiftConfig {
	return attendance.ShiftConfig{
		Morning: attendance.ShiftWindow{
			Start:            mustTimeOfDay("08:00"),
			End:              mustTimeOfDay("12:00"),
			LateAfter:        mustTimeOfDay("08:30"),
			EarlyLeaveBefore: mustTimeOfDay("12:00"),
		},
		Evening: attendance.ShiftWindow{
			Start:            mustTimeOfDay("13:00"),
			End:              mustTimeOfDay("17:00"),
			LateAfter:        mustTimeOfDay("13:30"),
			EarlyLeaveBefore: mustTimeOfDay("17:00"),
		},
		GracePeriod: 15 * time.Minute,
	}
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	svc      attendance.AttendanceService
	store    *memoryStore
	leaves   *fakeLeaveRepo
	settings *fakeSettings
	notifier *recordingNotifier
	clock    *clock
	loc      *time.Location
}

const employeeID = "0199f1a2-0000-7000-8000-000000000001"

func newFixture() *fixture {
	loc := time.FixedZone("CET", 3600)
	f := &fixture{
		store:  newMemoryStore(),
		leaves: &fakeLeaveRepo{onLeave: map[string]bool{}},
		settings: &fakeSettings{setting: company.Setting{
			ID:                  "setting-1",
			Name:                "HQ",
			Latitude:            36.75,
			Longitude:           3.06,
			AllowedRadiusMeters: 200,
		}},
		notifier: &recordingNotifier{},
		clock:    &clock{now: time.Date(2025, 10, 26, 8, 10, 0, 0, loc)},
		loc:      loc,
	}

	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"E1":      {ID: employeeID, Name: "Amina Benali", Matri: "E1", Status: employee.EmployeeStatusActive},
		"E2":      {ID: "emp-2", Name: "Karim Haddad", Matri: "E2", Status: employee.EmployeeStatusInactive},
		"EMP_001": {ID: "emp-3", Name: "Nadia Saadi", Matri: "EMP_001", Status: employee.EmployeeStatusActive},
		"AB 12":   {ID: "emp-4", Name: "Yacine Toumi", Matri: "AB 12", Status: employee.EmployeeStatusActive},
	}}

	f.svc = NewAttendanceService(f.store, f.store, employees, f.leaves, f.settings, f.notifier, Options{
		Shifts:      defaultShifts(),
		Location:    loc,
		DedupWindow: time.Minute,
		Clock:       f.clock.Now,
	})
	return f
}

func (f *fixture) at(hhmmss string) {
	t := mustTimeOfDay(hhmmss)
	f.clock.Set(time.Date(2025, 10, 26, 0, 0, 0, 0, f.loc).Add(time.Duration(t)))
}

func (f *fixture) today() time.Time {
	return time.Date(2025, 10, 26, 0, 0, 0, 0, f.loc)
}

func request(matri string, lat, lng float64) attendance.RecordAttendanceRequest {
	return attendance.RecordAttendanceRequest{Matri: matri, Latitude: &lat, Longitude: &lng}
}

func nearby() attendance.RecordAttendanceRequest {
	return request("E1", 36.7505, 3.0605)
}

func withAction(req attendance.RecordAttendanceRequest, action attendance.Action) attendance.RecordAttendanceRequest {
	a := string(action)
	req.Action = &a
	return req
}

func withType(req attendance.RecordAttendanceRequest, p attendance.Period) attendance.RecordAttendanceRequest {
	t := string(p)
	req.Type = &t
	return req
}
