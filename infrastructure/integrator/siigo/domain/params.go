package domain

// AuthParams são os parâmetros aceitos em POST /integrations/siigo/auth
type AuthParams struct {
	Username  string `mapstructure:"username" validate:"required"`
	AccessKey string `mapstructure:"accessKey" validate:"required"`
}

// LoginRequest é o corpo enviado ao endpoint de autenticação do Siigo
type LoginRequest struct {
	Username  string `json:"username"`
	AccessKey string `json:"access_key"`
}

// LoginResponse é a resposta do endpoint de autenticação; ExpiresIn em segundos
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type,omitempty"`
}
