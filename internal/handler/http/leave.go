package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/leave"
	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListLeaves(w http.ResponseWriter, r *http.Request)
	ApplyLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// ListLeaves implements LeaveHandler.
func (l *LeaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	departmentID, err := queryID(r, "department")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	employeeID, err := queryID(r, "employee")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.LeaveFilter{
		Month:        query(r, "month"),
		Year:         query(r, "year"),
		DepartmentID: departmentID,
		EmployeeID:   employeeID,
		Status:       query(r, "status"),
	}

	leaves, err := l.leaveService.ListLeaves(r.Context(), filter)
	if err != nil {
		slog.Error("ListLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, leaves)
}

// ApplyLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyLeaveRequest

	// Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.ApplyLeave(r.Context(), req)
	if err != nil {
		slog.Error("ApplyLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// ApproveLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.leaveService.ApproveLeave(r.Context(), id)
	if err != nil {
		slog.Error("ApproveLeave service error", "leave_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved", result)
}
