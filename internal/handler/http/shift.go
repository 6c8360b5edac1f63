package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	GetMyConfig(w http.ResponseWriter, r *http.Request)
	GetDefault(w http.ResponseWriter, r *http.Request)
	UpsertDefault(w http.ResponseWriter, r *http.Request)
	GetEffective(w http.ResponseWriter, r *http.Request)
	UpsertEmployee(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	configService shift.ConfigService
}

func NewShiftHandler(configService shift.ConfigService) ShiftHandler {
	return &shiftHandlerImpl{
		configService: configService,
	}
}

// GetMyConfig implements ShiftHandler.
func (h *shiftHandlerImpl) GetMyConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.GetMyConfig(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDefault implements ShiftHandler.
func (h *shiftHandlerImpl) GetDefault(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.GetDefault(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertDefault implements ShiftHandler.
func (h *shiftHandlerImpl) UpsertDefault(w http.ResponseWriter, r *http.Request) {
	var req shift.UpsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.UpsertDefault(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default shift configuration saved", result)
}

// GetEffective implements ShiftHandler.
func (h *shiftHandlerImpl) GetEffective(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.configService.GetEffective(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertEmployee implements ShiftHandler.
func (h *shiftHandlerImpl) UpsertEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req shift.UpsertConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.configService.UpsertEmployee(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee shift configuration saved", result)
}
