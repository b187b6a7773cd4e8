package payload

import (
	"errors"
	"strings"
	"wordlab/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 0)),
		validation.Field(&r.Password, validation.Required, validation.Length(4, 0)),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, validation.By(containsAtSign)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Email:    r.Email,
	}
}

func containsAtSign(value interface{}) error {
	s, _ := value.(string)
	if !strings.Contains(s, "@") {
		return errors.New("must be a valid email address")
	}
	return nil
}
