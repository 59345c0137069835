package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/attendance"
	"github.com/brilliantafrica/attendance-backend-go/internal/handler/http/response"
	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/export"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)

	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyInOut(w http.ResponseWriter, r *http.Request)
	LateClockIns(w http.ResponseWriter, r *http.Request)
	Overtime(w http.ResponseWriter, r *http.Request)
	OvertimeByEmployee(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     attendance.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService attendance.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

func (h *attendanceHandlerImpl) decodeClock(w http.ResponseWriter, r *http.Request) (attendance.ClockRequest, bool) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeClock(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeClock(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// Record implements AttendanceHandler.
func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		slog.Error("Record attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

func dailyRequest(r *http.Request) (attendance.DailyReportRequest, error) {
	departmentID, err := queryID(r, "department")
	if err != nil {
		return attendance.DailyReportRequest{}, err
	}
	return attendance.DailyReportRequest{
		Date:         query(r, "date"),
		DepartmentID: departmentID,
	}, nil
}

func monthlyRequest(r *http.Request) (attendance.MonthlyReportRequest, error) {
	departmentID, err := queryID(r, "department")
	if err != nil {
		return attendance.MonthlyReportRequest{}, err
	}
	employeeID, err := queryID(r, "employee")
	if err != nil {
		return attendance.MonthlyReportRequest{}, err
	}
	return attendance.MonthlyReportRequest{
		Month:        query(r, "month"),
		Year:         query(r, "year"),
		DepartmentID: departmentID,
		EmployeeID:   employeeID,
	}, nil
}

// Daily implements AttendanceHandler.
func (h *attendanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req, err := dailyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.Daily(r.Context(), req)
	if err != nil {
		slog.Error("Daily report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, rows)
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.MonthlySummary(r.Context(), req)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, rows)
}

// MonthlyInOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyInOut(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.MonthlyInOut(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyInOut report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, rows)
}

// LateClockIns implements AttendanceHandler.
func (h *attendanceHandlerImpl) LateClockIns(w http.ResponseWriter, r *http.Request) {
	departmentID, err := queryID(r, "department")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.LateReportRequest{
		Date:         query(r, "date"),
		Month:        query(r, "month"),
		Year:         query(r, "year"),
		DepartmentID: departmentID,
	}

	rows, err := h.reportService.LateClockIns(r.Context(), req)
	if err != nil {
		slog.Error("LateClockIns report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, rows)
}

// Overtime implements AttendanceHandler.
func (h *attendanceHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.Overtime(r.Context(), req)
	if err != nil {
		slog.Error("Overtime report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, rows)
}

// OvertimeByEmployee implements AttendanceHandler.
func (h *attendanceHandlerImpl) OvertimeByEmployee(w http.ResponseWriter, r *http.Request) {
	req, err := monthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.reportService.OvertimeByEmployee(r.Context(), req)
	if err != nil {
		slog.Error("OvertimeByEmployee report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, rows)
}

// Export implements AttendanceHandler. format=json answers with the report
// rows, csv and xlsx stream a download.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(query(r, "format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	daily, err := dailyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	monthly, err := monthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req := attendance.ExportRequest{
		Type:    attendance.ReportType(chi.URLParam(r, "type")),
		Daily:   daily,
		Monthly: monthly,
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if format == export.FormatJSON {
		h.exportJSON(w, r, req)
		return
	}

	table, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		slog.Error("Export report service error", "type", req.Type, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(req, format)))
	if err := export.Write(w, format, table); err != nil {
		// headers are already sent
		slog.Error("Export write error", "format", format, "error", err)
	}
}

func (h *attendanceHandlerImpl) exportJSON(w http.ResponseWriter, r *http.Request, req attendance.ExportRequest) {
	switch req.Type {
	case attendance.ReportDaily:
		rows, err := h.reportService.Daily(r.Context(), req.Daily)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.List(w, rows)
	default:
		rows, err := h.reportService.MonthlySummary(r.Context(), req.Monthly)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.List(w, rows)
	}
}

func exportFilename(req attendance.ExportRequest, f export.Format) string {
	if req.Type == attendance.ReportDaily {
		return fmt.Sprintf("attendance-daily-%s.%s", req.Daily.Date, f)
	}
	return fmt.Sprintf("attendance-monthly-%s-%s.%s", req.Monthly.Year, req.Monthly.Month, f)
}
