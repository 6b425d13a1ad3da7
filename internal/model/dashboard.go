package model

type DashboardStats struct {
	TotalUsers           int `json:"total_users"`
	TotalCompanies       int `json:"total_companies"`
	TotalDonations       int `json:"total_donations"`
	TotalFundingRequests int `json:"total_funding_requests"`
}
