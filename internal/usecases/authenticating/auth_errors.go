package authenticating

import (
	"errors"
)

var (
	ErrInvalidToken  = errors.New("token inválido")
	ErrExpiredToken  = errors.New("token expirado")
	ErrMissingSecret = errors.New("auth secret não configurado")
	ErrMissingUserID = errors.New("token sem user_id")
)
