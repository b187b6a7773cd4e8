package core

type RegisterMessage struct {
	Username string
	Password string
	Name     string
	Email    string
}

type AuthMessage struct {
	Username string
	Password string
}

type UserInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// AnalysisResult carries one analysis pass. RecordID is set for basic
// analysis only.
type AnalysisResult struct {
	Word     string
	Analysis string
	RecordID string
}

type HistoryEntry struct {
	ID               string  `json:"id"`
	Word             string  `json:"word"`
	BasicAnalysis    *string `json:"basic_analysis"`
	AdvancedAnalysis *string `json:"advanced_analysis"`
	Timestamp        string  `json:"timestamp"`
}

type Status struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	UsersCount     int64  `json:"users_count"`
	ActiveSessions int    `json:"active_sessions"`
	APIURL         string `json:"api_url"`
	APIType        string `json:"api_type"`
}

type DebugRecord struct {
	Index       int    `json:"index"`
	ID          string `json:"id"`
	Word        string `json:"word"`
	HasBasic    bool   `json:"has_basic"`
	HasAdvanced bool   `json:"has_advanced"`
	Timestamp   string `json:"timestamp"`
}

type DebugReport struct {
	Username     string        `json:"username"`
	TotalRecords int           `json:"total_records"`
	Records      []DebugRecord `json:"records"`
}
