package report

// FinancialReportResponse is the payload of the admin financial screen.
type FinancialReportResponse struct {
	Stats    FinancialStats  `json:"stats"`
	Bookings []BookingDetail `json:"bookings"`
}

// DocumentResult reports where a generated document ended up. Shared is
// false when the sharing channel was unavailable and the caller should
// surface Message (the "saved at path" fallback) as terminal success.
type DocumentResult struct {
	FilePath string `json:"file_path"`
	Shared   bool   `json:"shared"`
	Message  string `json:"message"`
}
