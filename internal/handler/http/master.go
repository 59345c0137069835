package http

import (
	"log/slog"
	"net/http"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/master/holiday"
	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/response"
	"github.com/brilliantafrica/attendance-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Department handlers
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)

	// Holiday handlers
	ListHolidays(w http.ResponseWriter, r *http.Request)

	// Work schedule handlers
	ListWorkSchedules(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== DEPARTMENT HANDLERS ====================

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, departments)
}

func (h *masterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dept, err := h.masterService.GetDepartment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dept)
}

// ==================== HOLIDAY HANDLERS ====================

func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	req := holiday.ListHolidaysRequest{Year: query(r, "year")}

	holidays, err := h.masterService.ListHolidays(r.Context(), req)
	if err != nil {
		slog.Error("ListHolidays service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, holidays)
}

// ==================== WORK SCHEDULE HANDLERS ====================

func (h *masterHandlerImpl) ListWorkSchedules(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryID(r, "employee")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	schedules, err := h.masterService.ListWorkSchedules(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListWorkSchedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, schedules)
}
