package payload

import (
	"github.com/jellydator/validation"
)

type AnalyzeRequest struct {
	Word      string `json:"word"`
	SessionID string `json:"session_id"`
}

func (a AnalyzeRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Word, validation.Required),
		validation.Field(&a.SessionID, validation.Required),
	)
}

type LogoutRequest struct {
	SessionID string `json:"session_id"`
}

func (l LogoutRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.SessionID, validation.Required),
	)
}
