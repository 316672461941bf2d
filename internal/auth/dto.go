package auth

import "github.com/hrcore/hr-management/internal/core/common/validation"

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	v := validation.New()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d RefreshTokenDTO) Validate() error {
	v := validation.New()
	v.Field("refresh_token", d.RefreshToken).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}
