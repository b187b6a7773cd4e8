package repository

import "time"

type AnalysisKind string

const (
	AnalysisBasic    AnalysisKind = "basic"
	AnalysisAdvanced AnalysisKind = "advanced"
)

type User struct {
	Username     string `gorm:"primaryKey;type:varchar(255)"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}

// AnalysisRecord holds both analysis passes for one word in one user's ledger.
// Word is stored lowercased; (Username, Word) is unique.
type AnalysisRecord struct {
	ID               string    `gorm:"primaryKey;autoIncrement:false"`
	Username         string    `gorm:"index:idx_username_word,unique;not null"`
	Word             string    `gorm:"index:idx_username_word,unique;not null"`
	BasicAnalysis    *string   `gorm:"type:text"`
	AdvancedAnalysis *string   `gorm:"type:text"`
	Timestamp        time.Time `gorm:"index"`
}

func (r *AnalysisRecord) setAnalysis(kind AnalysisKind, text string) {
	if kind == AnalysisAdvanced {
		r.AdvancedAnalysis = &text
		return
	}
	r.BasicAnalysis = &text
}
