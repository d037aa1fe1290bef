package domain

// TimeQuery carries the query parameters of the time formatting endpoint.
type TimeQuery struct {
	Locale string `json:"locale"`
	TZ     string `json:"tz"`
}

// CompareQuery names the two images whose latest scans are compared.
type CompareQuery struct {
	Baseline  string `json:"baseline"`
	Candidate string `json:"candidate"`
}
