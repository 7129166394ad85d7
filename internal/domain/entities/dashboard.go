package entities

// DashboardStats aggregates one merchant's payments and checkout links.
type DashboardStats struct {
	TotalPayments    int     `json:"total_payments"`
	PaidCount        int     `json:"paid_count"`
	PaidAmount       int64   `json:"paid_amount"`
	PendingCount     int     `json:"pending_count"`
	PendingAmount    int64   `json:"pending_amount"`
	RecoveredCount   int     `json:"recovered_count"`
	RecoveredAmount  int64   `json:"recovered_amount"`
	EmailsSent       int     `json:"emails_sent"`
	CheckoutAccesses int     `json:"checkout_accesses"`
	ConversionRate   float64 `json:"conversion_rate"`
}

type MerchantPaymentSummary struct {
	UserID        string `json:"user_id"`
	TotalPayments int    `json:"total_payments"`
	PaidPayments  int    `json:"paid_payments"`
	PaidAmount    int64  `json:"paid_amount"`
}

// AdminStats aggregates across every merchant.
type AdminStats struct {
	TotalMerchants int                      `json:"total_merchants"`
	TotalPayments  int                      `json:"total_payments"`
	PaidCount      int                      `json:"paid_count"`
	PaidAmount     int64                    `json:"paid_amount"`
	PendingCount   int                      `json:"pending_count"`
	RecoveredCount int                      `json:"recovered_count"`
	EmailsSent     int                      `json:"emails_sent"`
	Merchants      []MerchantPaymentSummary `json:"merchants"`
}
