package services

import (
	"fmt"
	"slices"
	"time"

	"footballclub/models"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	store    CredentialStore
	tokens   *TokenService
	tokenTTL time.Duration

	// dummyHash is compared against when the username is unknown so both
	// failure paths spend the same bcrypt work.
	dummyHash []byte
}

type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewAuthService(store CredentialStore, tokens *TokenService, tokenTTL time.Duration) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("footballclub-unknown-user"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}

	return &AuthService{
		store:     store,
		tokens:    tokens,
		tokenTTL:  tokenTTL,
		dummyHash: dummy,
	}, nil
}

// Login checks a username and password and issues an access token. Any
// mismatch yields ErrInvalidCredentials without saying which part failed.
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	cred, ok := s.store.Lookup(req.Username)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(cred.Username, cred.Role, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate resolves the caller behind a bearer token. With no roles
// given any authenticated caller passes; otherwise the caller's role must
// be one of roles.
func (s *AuthService) Authenticate(token string, roles ...models.Role) (*models.Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	identity := &models.Identity{Username: claims.Subject, Role: claims.Role}
	if len(roles) > 0 && !slices.Contains(roles, identity.Role) {
		return identity, ErrForbidden
	}

	return identity, nil
}
