package domain

// AuthParams são os parâmetros aceitos em POST /integrations/alegra/auth
type AuthParams struct {
	Email  string `mapstructure:"email" validate:"required,email"`
	APIKey string `mapstructure:"apiKey" validate:"required"`
}
