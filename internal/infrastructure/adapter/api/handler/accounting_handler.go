package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// AccountingHandler serves the platform totals, audit trail and reports
type AccountingHandler struct {
	ledger  usecase.LedgerUseCase
	reports usecase.ReportUseCase
	logger  coreport.Logger
}

// NewAccountingHandler creates a new accounting handler instance
func NewAccountingHandler(ledger usecase.LedgerUseCase, reports usecase.ReportUseCase, logger coreport.Logger) *AccountingHandler {
	return &AccountingHandler{
		ledger:  ledger,
		reports: reports,
		logger:  logger,
	}
}

// GetOperatingBalance handles GET /operating-balance
func (h *AccountingHandler) GetOperatingBalance(c *gin.Context) {
	balance, err := h.ledger.GetOperatingBalance(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOperatingBalanceResponse(balance))
}

// ListSystemLogs handles GET /system-logs?limit=
func (h *AccountingHandler) ListSystemLogs(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logs, err := h.ledger.ListSystemLogs(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.SystemLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.NewSystemLogResponse(l))
	}
	c.JSON(http.StatusOK, out)
}

// DashboardStats handles GET /dashboard/stats
func (h *AccountingHandler) DashboardStats(c *gin.Context) {
	stats, err := h.reports.DashboardStats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardStatsResponse(stats))
}

// GenerateReport handles POST /reports
func (h *AccountingHandler) GenerateReport(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	report, err := h.reports.GenerateReport(c.Request.Context(), usecase.GenerateReportRequest{
		ReportType:  req.ReportType,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReportResponse(report))
}

// GetReport handles GET /reports/:reportId
func (h *AccountingHandler) GetReport(c *gin.Context) {
	reportID, err := parseID(c, "reportId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	report, err := h.reports.GetReport(c.Request.Context(), reportID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// ListReports handles GET /reports?limit=
func (h *AccountingHandler) ListReports(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	reports, err := h.reports.ListReports(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.NewReportResponse(r))
	}
	c.JSON(http.StatusOK, out)
}
