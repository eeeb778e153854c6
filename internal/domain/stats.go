package domain

type MunicipalityCount struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int    `json:"total"`
}

// DashboardStats is derived on demand from the full record collection and
// never persisted. Total always equals the number of records scanned;
// records with unknown status strings count only there.
type DashboardStats struct {
	Total          int                 `json:"total"`
	Received       int                 `json:"received"`
	InService      int                 `json:"inService"`
	Finalized      int                 `json:"finalized"`
	Canceled       int                 `json:"canceled"`
	ByMunicipality []MunicipalityCount `json:"byMunicipality"` // top 10, descending
	ByDay          []DayCount          `json:"byDay"`          // latest 30 distinct days, ascending
}
