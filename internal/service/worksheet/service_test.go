package worksheet

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWorksheetRepo struct {
	records map[string]worksheet.Worksheet // keyed by employeeID|date
	nextID  int
}

func newStubWorksheetRepo() *stubWorksheetRepo {
	return &stubWorksheetRepo{records: make(map[string]worksheet.Worksheet)}
}

func (s *stubWorksheetRepo) key(employeeID, date string) string {
	return employeeID + "|" + date
}

func (s *stubWorksheetRepo) Create(ctx context.Context, ws worksheet.Worksheet) (worksheet.Worksheet, error) {
	k := s.key(ws.EmployeeID, ws.Date)
	if _, exists := s.records[k]; exists {
		return worksheet.Worksheet{}, worksheet.ErrWorksheetExists
	}
	s.nextID++
	ws.ID = fmt.Sprintf("ws-%d", s.nextID)
	ws.CreatedAt = time.Now()
	ws.UpdatedAt = ws.CreatedAt
	s.records[k] = ws
	return ws, nil
}

func (s *stubWorksheetRepo) GetByID(ctx context.Context, id string, employeeID string) (worksheet.Worksheet, error) {
	for _, ws := range s.records {
		if ws.ID == id && ws.EmployeeID == employeeID {
			return ws, nil
		}
	}
	return worksheet.Worksheet{}, worksheet.ErrWorksheetNotFound
}

func (s *stubWorksheetRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*worksheet.Worksheet, error) {
	if ws, ok := s.records[s.key(employeeID, date)]; ok {
		return &ws, nil
	}
	return nil, nil
}

func (s *stubWorksheetRepo) Update(ctx context.Context, ws worksheet.Worksheet) error {
	k := s.key(ws.EmployeeID, ws.Date)
	if _, ok := s.records[k]; !ok {
		return worksheet.ErrWorksheetNotFound
	}
	ws.UpdatedAt = time.Now()
	s.records[k] = ws
	return nil
}

func (s *stubWorksheetRepo) Delete(ctx context.Context, id string, employeeID string) error {
	for k, ws := range s.records {
		if ws.ID == id && ws.EmployeeID == employeeID {
			delete(s.records, k)
			return nil
		}
	}
	return worksheet.ErrWorksheetNotFound
}

func (s *stubWorksheetRepo) List(ctx context.Context, employeeID string, filter worksheet.WorksheetFilter) ([]worksheet.Worksheet, int64, error) {
	var out []worksheet.Worksheet
	for _, ws := range s.records {
		if ws.EmployeeID == employeeID {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, int64(len(out)), nil
}

func (s *stubWorksheetRepo) ListByDateRange(ctx context.Context, employeeID string, startDate, endDate string) ([]worksheet.Worksheet, error) {
	var out []worksheet.Worksheet
	for _, ws := range s.records {
		if ws.EmployeeID == employeeID && ws.Date >= startDate && ws.Date <= endDate {
			out = append(out, ws)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func contextWithEmployee(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newWorksheetTestService(repo worksheet.WorksheetRepository) worksheet.WorksheetService {
	return NewWorksheetService(nil, repo, NewCalculator())
}

func TestWorksheetService_Create_ComputesDerivedFields(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	resp, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{
		Date: "2024-03-12",
		Entries: []worksheet.EntryInput{
			{From: "09:00", To: "11:00", Task: "API integration", Status: "Completed"},
			{From: "11:00", To: "12:30", Task: "Code review", Status: "In Progress"},
		},
		Breaks: []worksheet.BreakInput{
			{Start: "12:30", End: "13:00", Reason: "Lunch"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 3.5, resp.TotalWorkHours)
	assert.Equal(t, 0.5, resp.TotalBreakHours)
	assert.Equal(t, 3.0, resp.EffectiveWorkHours)
	assert.Equal(t, 2, resp.TaskSummary.Total)
	assert.Equal(t, 1, resp.TaskSummary.Completed)
	assert.Equal(t, 120, resp.Entries[0].Duration)
}

func TestWorksheetService_Create_DuplicateDate(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	req := worksheet.CreateWorksheetRequest{Date: "2024-03-12"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, worksheet.ErrWorksheetExists)
}

func TestWorksheetService_Create_InvalidEntryTime(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	_, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{
		Date: "2024-03-12",
		Entries: []worksheet.EntryInput{
			{From: "9am", To: "11:00"},
		},
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "entries[0].from", verrs[0].Field)
}

func TestWorksheetService_Get_ScopedToEmployee(t *testing.T) {
	repo := newStubWorksheetRepo()
	svc := newWorksheetTestService(repo)

	created, err := svc.Create(contextWithEmployee(t, "emp-1"), worksheet.CreateWorksheetRequest{Date: "2024-03-12"})
	require.NoError(t, err)

	// Another employee cannot see it.
	_, err = svc.Get(contextWithEmployee(t, "emp-2"), created.ID)
	assert.ErrorIs(t, err, worksheet.ErrWorksheetNotFound)

	resp, err := svc.Get(contextWithEmployee(t, "emp-1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}

func TestWorksheetService_Update_RecomputesAndReplaces(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	created, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{
		Date: "2024-03-12",
		Entries: []worksheet.EntryInput{
			{From: "09:00", To: "10:00", Status: "Pending"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, created.TotalWorkHours)

	updated, err := svc.Update(ctx, worksheet.UpdateWorksheetRequest{
		ID: created.ID,
		Entries: []worksheet.EntryInput{
			{From: "09:00", To: "12:00", Status: "Completed"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, updated.TotalWorkHours)
	assert.Equal(t, 1, updated.TaskSummary.Completed)
	assert.Len(t, updated.Entries, 1)
}

func TestWorksheetService_Submit_LocksRecord(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	created, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{Date: "2024-03-12"})
	require.NoError(t, err)

	submitted, err := svc.Submit(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, submitted.IsSubmitted)
	require.NotNil(t, submitted.SubmittedAt)

	// Locked for mutation and re-submission.
	_, err = svc.Update(ctx, worksheet.UpdateWorksheetRequest{ID: created.ID})
	assert.ErrorIs(t, err, worksheet.ErrWorksheetSubmitted)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, worksheet.ErrWorksheetSubmitted)

	_, err = svc.Submit(ctx, created.ID)
	assert.ErrorIs(t, err, worksheet.ErrWorksheetSubmitted)
}

func TestWorksheetService_Delete(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	created, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{Date: "2024-03-12"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, worksheet.ErrWorksheetNotFound)
}

func TestWorksheetService_List_Pagination(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	for _, date := range []string{"2024-03-11", "2024-03-12", "2024-03-13"} {
		_, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{Date: date})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, worksheet.WorksheetFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Len(t, resp.Worksheets, 3)
}

func TestWorksheetService_Summary(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	_, err := svc.Create(ctx, worksheet.CreateWorksheetRequest{
		Date: "2024-03-11",
		Entries: []worksheet.EntryInput{
			{From: "09:00", To: "13:00", Status: "Completed"},
		},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, worksheet.CreateWorksheetRequest{
		Date: "2024-03-12",
		Entries: []worksheet.EntryInput{
			{From: "09:00", To: "11:00", Status: "Pending"},
		},
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, worksheet.SummaryRequest{
		StartDate: "2024-03-11",
		EndDate:   "2024-03-12",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalDays)
	assert.Equal(t, 1, summary.TotalCompletedTasks)
	assert.Equal(t, 6.0, summary.TotalWorkHours)
	// Day one scores 100 (all completed), day two 30 (all pending).
	assert.Equal(t, 65.0, summary.AverageProductivity)
	require.Len(t, summary.DailyBreakdown, 2)
	assert.Equal(t, "2024-03-11", summary.DailyBreakdown[0].Date)
}

func TestWorksheetService_Summary_EmptyRange(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	summary, err := svc.Summary(ctx, worksheet.SummaryRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.AverageProductivity)
	assert.Empty(t, summary.DailyBreakdown)
}

func TestWorksheetService_Summary_EndBeforeStart(t *testing.T) {
	svc := newWorksheetTestService(newStubWorksheetRepo())
	ctx := contextWithEmployee(t, "emp-1")

	_, err := svc.Summary(ctx, worksheet.SummaryRequest{
		StartDate: "2024-03-12",
		EndDate:   "2024-03-11",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_date", verrs[0].Field)
}
