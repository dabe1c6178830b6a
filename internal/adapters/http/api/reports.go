package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/draftboard/internal/app"
	"github.com/okian/draftboard/internal/domain/model"
	"github.com/okian/draftboard/internal/domain/types"
)

// ReportsDependencies defines the scouting report operations.
type ReportsDependencies interface {
	Reports(ctx context.Context, id int) ([]model.Report, error)
	SubmitReport(ctx context.Context, sess service.Session, id int, r model.Report) (model.Report, error)
	MyReports(ctx context.Context, sess service.Session) ([]types.PlayerReports, error)
}

// ReportsHandler handles report requests.
type ReportsHandler struct {
	deps ReportsDependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps ReportsDependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// reportRequest is the body of POST /players/{playerID}/reports.
type reportRequest struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	Grade    *int   `json:"grade"`
	Interest string `json:"interest"`
	Type     string `json:"type"`
}

func (req reportRequest) report() model.Report {
	return model.Report{
		Name:     req.Name,
		Text:     req.Text,
		Grade:    req.Grade,
		Interest: model.Interest(req.Interest),
		Type:     model.DraftType(req.Type),
	}
}

// HandleList handles GET /players/{playerID}/reports.
func (h *ReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_reports"
	id, err := playerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	reports, err := h.deps.Reports(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// HandleSubmit handles POST /players/{playerID}/reports.
func (h *ReportsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_report"
	id, err := playerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	stored, err := h.deps.SubmitReport(r.Context(), SessionFrom(r), id, req.report())
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

// HandleMine handles GET /reports/mine for the requesting scout.
func (h *ReportsHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	const op = "api.my_reports"
	sess := SessionFrom(r)
	if sess.ScoutEmail == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	mine, err := h.deps.MyReports(r.Context(), sess)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, mine)
}
