package cmd

type Paging struct {
	Skip  int64 `json:"skip" query:"skip"`
	Limit int64 `json:"limit" query:"limit"`
}

type RootResp struct {
	Message string `json:"message"`
}

type HealthResp struct {
	Status           string `json:"status"`
	ApiKeyConfigured bool   `json:"api_key_configured"`
}
