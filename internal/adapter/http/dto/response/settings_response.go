package response

type SettingsResponse struct {
	CompanyLogo string `json:"companyLogo"`
}
