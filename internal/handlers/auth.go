package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	firebaseAuth           *auth.Client
	jwtSecret              string
	emailRedirectBase      string
	appBaseURL             string
}

// NewAuthHandler creates a new AuthHandler. emailRedirectBase is where
// confirmation links point (differs between development and production);
// appBaseURL is where the confirm endpoint sends the browser afterwards.
func NewAuthHandler(userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository, firebaseAuthClient *auth.Client, jwtSecret, emailRedirectBase, appBaseURL string) *AuthHandler {
	return &AuthHandler{
		userRepository:         userRepo,
		notificationRepository: notifRepo,
		firebaseAuth:           firebaseAuthClient,
		jwtSecret:              jwtSecret,
		emailRedirectBase:      emailRedirectBase,
		appBaseURL:             appBaseURL,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	g.POST("/refresh", h.Refresh)
	g.POST("/firebase-login", h.FirebaseLogin)
	g.GET("/confirm", h.Confirm)
}

// Signup handles local user registration with email and password. The
// confirmation link carries the token pair in its fragment and is handed
// to the notification dispatcher for delivery.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Check if user with this email already exists
	_, err := h.userRepository.GetUserByEmail(req.Email)
	if err == nil {
		return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	tokens, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens after signup")
	}

	// Confirmation link mirrors the email-redirect flow: the token pair
	// travels in the URL fragment and is exchanged by GET /auth/confirm.
	confirmLink := fmt.Sprintf("%s/#access_token=%s&refresh_token=%s",
		h.emailRedirectBase, url.QueryEscape(tokens.AccessToken), url.QueryEscape(tokens.RefreshToken))

	notification := &models.Notification{
		UserID:  user.ID,
		Title:   "Confirm your email",
		Message: "Open this link to confirm your account: " + confirmLink,
		Type:    "info",
	}
	if err := h.notificationRepository.Create(notification); err != nil {
		// Account exists either way; the user can request a fresh link.
		c.Logger().Errorf("failed to dispatch confirmation notification: %v", err)
	}

	return c.JSON(http.StatusCreated, tokens)
}

// SignIn handles local user authentication with email and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SigninRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	tokens, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshRequest defines the request body for token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := h.parseToken(req.RefreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User no longer exists")
	}

	tokens, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, tokens)
}

// Confirm exchanges the URL-embedded token pair set by the email
// confirmation redirect for a confirmed account, then sends the browser
// to the clean app address with the tokens stripped.
func (h *AuthHandler) Confirm(c echo.Context) error {
	accessToken := c.QueryParam("access_token")
	refreshToken := c.QueryParam("refresh_token")
	if accessToken == "" || refreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing token pair")
	}

	claims, err := h.parseToken(refreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	user, err := h.userRepository.GetUserByID(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User no longer exists")
	}

	if !user.EmailConfirmed {
		user.EmailConfirmed = true
		if err := h.userRepository.UpdateUser(user); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to confirm email")
		}
	}

	return c.Redirect(http.StatusFound, h.appBaseURL)
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// FirebaseLogin handles Firebase ID token verification and issues local tokens
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req FirebaseLoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify Firebase ID token
	token, err := h.firebaseAuth.VerifyIDToken(context.Background(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	firebaseUID := token.UID
	email, _ := token.Claims["email"].(string)
	name := ""
	if displayName, ok := token.Claims["name"].(string); ok {
		name = displayName
	}

	// Try to find user by Firebase UID, then by email, creating on first login
	user, err := h.userRepository.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			user, err = h.userRepository.GetUserByEmail(email)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					newUser := &models.User{
						Name:           name,
						Email:          email,
						FirebaseUID:    &firebaseUID,
						EmailConfirmed: true, // Firebase already verified it
					}
					if err := h.userRepository.CreateUser(newUser); err != nil {
						return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
					}
					user = newUser
				} else {
					return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
				}
			} else {
				// User found by email, link their Firebase UID
				user.FirebaseUID = &firebaseUID
				if err := h.userRepository.UpdateUser(user); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user with Firebase UID")
				}
			}
		} else {
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
	}

	tokens, err := h.generateTokenPair(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate tokens")
	}

	return c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) generateTokenPair(user *models.User) (*models.TokenPair, error) {
	access, err := h.signToken(user, "", time.Hour*72)
	if err != nil {
		return nil, err
	}
	refresh, err := h.signToken(user, "refresh", time.Hour*24*30)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (h *AuthHandler) signToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

func (h *AuthHandler) parseToken(tokenString string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
