package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/handler/http/response"
)

type WorksheetHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type worksheetHandlerImpl struct {
	worksheetService worksheet.WorksheetService
}

func NewWorksheetHandler(worksheetService worksheet.WorksheetService) WorksheetHandler {
	return &worksheetHandlerImpl{
		worksheetService: worksheetService,
	}
}

// Create implements WorksheetHandler.
func (h *worksheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worksheet.CreateWorksheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.worksheetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worksheet created", result)
}

// Get implements WorksheetHandler.
func (h *worksheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.worksheetService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetByDate implements WorksheetHandler.
func (h *worksheetHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := h.worksheetService.GetByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements WorksheetHandler.
func (h *worksheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worksheet.UpdateWorksheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.worksheetService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worksheet updated", result)
}

// Delete implements WorksheetHandler.
func (h *worksheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.worksheetService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worksheet deleted", nil)
}

// Submit implements WorksheetHandler.
func (h *worksheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.worksheetService.Submit(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worksheet submitted", result)
}

// List implements WorksheetHandler.
func (h *worksheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worksheet.WorksheetFilter{
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	if page := r.URL.Query().Get("page"); page != "" {
		p, err := strconv.Atoi(page)
		if err != nil {
			response.BadRequest(w, "page must be a number", nil)
			return
		}
		filter.Page = p
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		filter.Limit = l
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	if submitted := r.URL.Query().Get("submitted"); submitted != "" {
		s, err := strconv.ParseBool(submitted)
		if err != nil {
			response.BadRequest(w, "submitted must be true or false", nil)
			return
		}
		filter.Submitted = &s
	}

	result, err := h.worksheetService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Worksheets, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Summary implements WorksheetHandler.
func (h *worksheetHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := worksheet.SummaryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.worksheetService.Summary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
