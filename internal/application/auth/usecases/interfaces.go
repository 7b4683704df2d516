package usecases

// TokenPair carries the tokens issued for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and refreshes signed tokens.
type JWTService interface {
	Generate(userID uint, username string, rememberMe bool) (*TokenPair, error)
	Refresh(refreshToken string) (string, error)
}
