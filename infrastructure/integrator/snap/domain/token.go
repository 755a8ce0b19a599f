package snapdomain

// TokenResponse representa a resposta do endpoint OAuth ao trocar ou renovar um token
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// ErrorResponse é o corpo de erro devolvido pelo servidor OAuth
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
