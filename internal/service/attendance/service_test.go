package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/attendance"
	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	shiftService "github.com/sanketsmane/ems-backend-go/internal/service/shift"
	worksheetService "github.com/sanketsmane/ems-backend-go/internal/service/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWorksheetRepo struct {
	records map[string]worksheet.Worksheet // keyed by employeeID|date
	nextID  int
}

func newMemWorksheetRepo() *memWorksheetRepo {
	return &memWorksheetRepo{records: make(map[string]worksheet.Worksheet)}
}

func (m *memWorksheetRepo) key(employeeID, date string) string {
	return employeeID + "|" + date
}

func (m *memWorksheetRepo) Create(ctx context.Context, ws worksheet.Worksheet) (worksheet.Worksheet, error) {
	k := m.key(ws.EmployeeID, ws.Date)
	if _, exists := m.records[k]; exists {
		return worksheet.Worksheet{}, worksheet.ErrWorksheetExists
	}
	m.nextID++
	ws.ID = "ws-" + string(rune('0'+m.nextID))
	ws.CreatedAt = time.Now()
	ws.UpdatedAt = ws.CreatedAt
	m.records[k] = ws
	return ws, nil
}

func (m *memWorksheetRepo) GetByID(ctx context.Context, id string, employeeID string) (worksheet.Worksheet, error) {
	for _, ws := range m.records {
		if ws.ID == id && ws.EmployeeID == employeeID {
			return ws, nil
		}
	}
	return worksheet.Worksheet{}, worksheet.ErrWorksheetNotFound
}

func (m *memWorksheetRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*worksheet.Worksheet, error) {
	if ws, ok := m.records[m.key(employeeID, date)]; ok {
		return &ws, nil
	}
	return nil, nil
}

func (m *memWorksheetRepo) Update(ctx context.Context, ws worksheet.Worksheet) error {
	k := m.key(ws.EmployeeID, ws.Date)
	if _, ok := m.records[k]; !ok {
		return worksheet.ErrWorksheetNotFound
	}
	ws.UpdatedAt = time.Now()
	m.records[k] = ws
	return nil
}

func (m *memWorksheetRepo) Delete(ctx context.Context, id string, employeeID string) error {
	for k, ws := range m.records {
		if ws.ID == id && ws.EmployeeID == employeeID {
			delete(m.records, k)
			return nil
		}
	}
	return worksheet.ErrWorksheetNotFound
}

func (m *memWorksheetRepo) List(ctx context.Context, employeeID string, filter worksheet.WorksheetFilter) ([]worksheet.Worksheet, int64, error) {
	var out []worksheet.Worksheet
	for _, ws := range m.records {
		if ws.EmployeeID == employeeID {
			out = append(out, ws)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memWorksheetRepo) ListByDateRange(ctx context.Context, employeeID string, startDate, endDate string) ([]worksheet.Worksheet, error) {
	var out []worksheet.Worksheet
	for _, ws := range m.records {
		if ws.EmployeeID == employeeID && ws.Date >= startDate && ws.Date <= endDate {
			out = append(out, ws)
		}
	}
	return out, nil
}

type memConfigRepo struct {
	cfg *shift.Config
}

func (m *memConfigRepo) GetByEmployeeID(ctx context.Context, employeeID string) (shift.Config, error) {
	if m.cfg != nil {
		return *m.cfg, nil
	}
	return shift.Config{}, shift.ErrShiftConfigNotFound
}

func (m *memConfigRepo) GetDefault(ctx context.Context) (shift.Config, error) {
	return shift.Config{}, shift.ErrShiftConfigNotFound
}

func (m *memConfigRepo) Upsert(ctx context.Context, cfg shift.Config) (shift.Config, error) {
	m.cfg = &cfg
	return cfg, nil
}

func (m *memConfigRepo) ListEmployeeIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *memWorksheetRepo, cfgRepo shift.ConfigRepository, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(
		nil,
		repo,
		shiftService.NewResolver(cfgRepo),
		worksheetService.NewCalculator(),
	).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestAttendanceService_CheckIn_OnTime(t *testing.T) {
	repo := newMemWorksheetRepo()
	// 09:25 against a 09:00 start with 30 min threshold
	now := time.Date(2024, 3, 12, 9, 25, 0, 0, time.UTC)
	svc := newTestService(repo, &memConfigRepo{}, now)

	ctx := authedContext(t, "emp-1")
	resp, err := svc.CheckIn(ctx)

	require.NoError(t, err)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "09:25", *resp.CheckInTime)
	require.NotNil(t, resp.AttendanceStatus)
	assert.Equal(t, string(shift.StatusOnTime), *resp.AttendanceStatus)
	assert.Equal(t, "2024-03-12", resp.Date)
}

func TestAttendanceService_CheckIn_Late(t *testing.T) {
	repo := newMemWorksheetRepo()
	now := time.Date(2024, 3, 12, 9, 35, 0, 0, time.UTC)
	svc := newTestService(repo, &memConfigRepo{}, now)

	resp, err := svc.CheckIn(authedContext(t, "emp-1"))

	require.NoError(t, err)
	require.NotNil(t, resp.AttendanceStatus)
	assert.Equal(t, string(shift.StatusLate), *resp.AttendanceStatus)
}

func TestAttendanceService_CheckIn_Twice(t *testing.T) {
	repo := newMemWorksheetRepo()
	now := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &memConfigRepo{}, now)

	ctx := authedContext(t, "emp-1")
	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	repo := newMemWorksheetRepo()
	now := time.Date(2024, 3, 12, 17, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &memConfigRepo{}, now)

	_, err := svc.CheckOut(authedContext(t, "emp-1"))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_PrefillsHourlySlots(t *testing.T) {
	repo := newMemWorksheetRepo()
	ctx := authedContext(t, "emp-1")

	checkIn := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &memConfigRepo{}, checkIn)
	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx)

	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "09:00", resp.Entries[0].From)
	assert.Equal(t, "12:00", resp.Entries[2].To)
	for _, e := range resp.Entries {
		assert.Equal(t, worksheet.StatusPending, e.Status)
		assert.Equal(t, 60, e.Duration)
	}
	// Three pending hour slots: 3h work, score reflects pending-only mix
	assert.Equal(t, 3.0, resp.TotalWorkHours)
	assert.Equal(t, 30, resp.ProductivityScore)
}

func TestAttendanceService_CheckOut_HalfDay(t *testing.T) {
	repo := newMemWorksheetRepo()
	ctx := authedContext(t, "emp-1")

	checkIn := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &memConfigRepo{}, checkIn)
	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	// 12:30 against an 18:00 end with a 4 h half-day threshold
	svc.now = func() time.Time { return time.Date(2024, 3, 12, 12, 30, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx)

	require.NoError(t, err)
	require.NotNil(t, resp.AttendanceStatus)
	assert.Equal(t, string(shift.StatusHalfDay), *resp.AttendanceStatus)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_CheckIn_LateStatusImmutableAtCheckOut(t *testing.T) {
	repo := newMemWorksheetRepo()
	ctx := authedContext(t, "emp-1")

	// Late check-in, full-day check-out: late must stick.
	svc := newTestService(repo, &memConfigRepo{}, time.Date(2024, 3, 12, 10, 30, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2024, 3, 12, 18, 5, 0, 0, time.UTC) }
	resp, err := svc.CheckOut(ctx)

	require.NoError(t, err)
	require.NotNil(t, resp.AttendanceStatus)
	assert.Equal(t, string(shift.StatusLate), *resp.AttendanceStatus)
}
