package entities

import "time"

// AnalyticsReport is the admin dashboard snapshot computed over every stored
// quotation.
type AnalyticsReport struct {
	TotalQuotations   int                 `json:"total_quotations"`
	TotalRevenue      float64             `json:"total_revenue"`
	PopularServices   []ServicePopularity `json:"popular_services"`
	QuotationsByAgent []AgentPerformance  `json:"quotations_by_agent"`
	RecentQuotations  []RecentQuotation   `json:"recent_quotations"`
}

type ServicePopularity struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

type AgentPerformance struct {
	AgentID   string  `json:"agent_id"`
	AgentName string  `json:"agent_name"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type RecentQuotation struct {
	ID         string          `json:"id"`
	Number     string          `json:"quotation_number"`
	ClientName string          `json:"client_name"`
	Total      float64         `json:"total"`
	Status     QuotationStatus `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	CreatedBy  *UserSummary    `json:"created_by,omitempty"`
}
