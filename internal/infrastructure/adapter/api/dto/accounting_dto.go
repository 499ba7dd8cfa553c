package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// OperatingBalanceResponse represents the platform totals
type OperatingBalanceResponse struct {
	TotalDeposits    string    `json:"totalDeposits"`
	TotalWithdrawals string    `json:"totalWithdrawals"`
	TotalBets        string    `json:"totalBets"`
	TotalPayouts     string    `json:"totalPayouts"`
	OperatingProfit  string    `json:"operatingProfit"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewOperatingBalanceResponse maps the operating balance
func NewOperatingBalanceResponse(b *entity.OperatingBalance) OperatingBalanceResponse {
	return OperatingBalanceResponse{
		TotalDeposits:    entity.AmountInCentsToString(b.TotalDeposits),
		TotalWithdrawals: entity.AmountInCentsToString(b.TotalWithdrawals),
		TotalBets:        entity.AmountInCentsToString(b.TotalBets),
		TotalPayouts:     entity.AmountInCentsToString(b.TotalPayouts),
		OperatingProfit:  entity.AmountInCentsToString(b.OperatingProfit),
		UpdatedAt:        b.UpdatedAt,
	}
}

// SystemLogResponse represents an audit entry
type SystemLogResponse struct {
	ID          uint64         `json:"id"`
	UserID      *uint64        `json:"userId,omitempty"`
	Action      string         `json:"action"`
	EntityType  string         `json:"entityType"`
	EntityID    string         `json:"entityId"`
	Description string         `json:"description,omitempty"`
	OldData     map[string]any `json:"oldData,omitempty"`
	NewData     map[string]any `json:"newData,omitempty"`
	IPAddress   string         `json:"ipAddress,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// NewSystemLogResponse maps an audit entry
func NewSystemLogResponse(l *entity.SystemLog) SystemLogResponse {
	return SystemLogResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Action:      string(l.Action),
		EntityType:  l.EntityType,
		EntityID:    l.EntityID,
		Description: l.Description,
		OldData:     l.OldData,
		NewData:     l.NewData,
		IPAddress:   l.IPAddress,
		CreatedAt:   l.CreatedAt,
	}
}

// DashboardStatsResponse represents the windowed dashboard projection
type DashboardStatsResponse struct {
	TotalUsers        int64  `json:"totalUsers"`
	ActiveGames       int64  `json:"activeGames"`
	TotalDeposits     string `json:"totalDeposits"`
	TotalWithdrawals  string `json:"totalWithdrawals"`
	TotalBets         string `json:"totalBets"`
	TotalWins         string `json:"totalWins"`
	NetProfit         string `json:"netProfit"`
	WinRate           string `json:"winRate"`
	TotalTransactions int64  `json:"totalTransactions"`
	WindowSize        int    `json:"windowSize"`
}

// NewDashboardStatsResponse maps dashboard stats
func NewDashboardStatsResponse(s *entity.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalUsers:        s.TotalUsers,
		ActiveGames:       s.ActiveGames,
		TotalDeposits:     entity.AmountInCentsToString(s.TotalDeposits),
		TotalWithdrawals:  entity.AmountInCentsToString(s.TotalWithdrawals),
		TotalBets:         entity.AmountInCentsToString(s.TotalBets),
		TotalWins:         entity.AmountInCentsToString(s.TotalWins),
		NetProfit:         entity.AmountInCentsToString(s.NetProfit),
		WinRate:           s.WinRate.StringFixed(1),
		TotalTransactions: s.TotalTransactions,
		WindowSize:        s.WindowSize,
	}
}

// GenerateReportRequest is the body of POST /reports
type GenerateReportRequest struct {
	ReportType  string     `json:"reportType" binding:"required,oneof=daily weekly monthly custom"`
	PeriodStart *time.Time `json:"periodStart"`
	PeriodEnd   *time.Time `json:"periodEnd"`
}

// ReportResponse represents a stored financial report
type ReportResponse struct {
	ID                uint64         `json:"id"`
	ReportType        string         `json:"reportType"`
	PeriodStart       time.Time      `json:"periodStart"`
	PeriodEnd         time.Time      `json:"periodEnd"`
	TotalBets         string         `json:"totalBets"`
	TotalWins         string         `json:"totalWins"`
	TotalLosses       string         `json:"totalLosses"`
	NetProfit         string         `json:"netProfit"`
	TotalTransactions int64          `json:"totalTransactions"`
	ReportData        map[string]any `json:"reportData,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// NewReportResponse maps a report entity
func NewReportResponse(r *entity.Report) ReportResponse {
	return ReportResponse{
		ID:                r.ID,
		ReportType:        string(r.ReportType),
		PeriodStart:       r.PeriodStart,
		PeriodEnd:         r.PeriodEnd,
		TotalBets:         entity.AmountInCentsToString(r.TotalBets),
		TotalWins:         entity.AmountInCentsToString(r.TotalWins),
		TotalLosses:       entity.AmountInCentsToString(r.TotalLosses),
		NetProfit:         entity.AmountInCentsToString(r.NetProfit),
		TotalTransactions: r.TotalTransactions,
		ReportData:        r.ReportData,
		CreatedAt:         r.CreatedAt,
	}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	Driver        string `json:"driver"`
	SchemaVersion string `json:"schemaVersion,omitempty"`
	Error         string `json:"error,omitempty"`
}
