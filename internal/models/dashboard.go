package models

// DashboardStats is the aggregate view served by /dashboard/stats. Computed
// entirely backend-side; mirrored here for display only.
type DashboardStats struct {
	TotalInvoices      int     `json:"total_invoices"`
	TotalPayments      int     `json:"total_payments"`
	TotalOrganizations int     `json:"total_organizations"`
	TotalUsers         int     `json:"total_users"`
	PendingInvoices    int     `json:"pending_invoices"`
	OverdueInvoices    int     `json:"overdue_invoices"`
	RevenueTotal       float64 `json:"revenue_total"`
	RevenueMonth       float64 `json:"revenue_month"`
}
