package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"records-service/internal/auth"
	"records-service/internal/domain/account"
	"records-service/internal/rbac"
	"records-service/internal/repository"
	apperrors "records-service/pkg/errors"
	"records-service/pkg/password"
	"records-service/pkg/validator"
)

// Pre-computed bcrypt hash (cost 12) used to equalize timing on the
// wrong-password path against lookups that never reached bcrypt.
const dummyBcryptHash = "$2a$12$dWR5CQpS4zNHLavLSIr4o.P6QDQEUJKv7mJ7WekUHHqyRSRMJzH0S"

type AuthHandler struct {
	accounts   repository.AccountRepository
	jwtService *auth.JWTService
	bcryptCost int
}

func NewAuthHandler(accounts repository.AccountRepository, jwtService *auth.JWTService, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

type RegisterRequest struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type RegisterResponse struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"firstname"`
	LastName        string     `json:"lastname"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Role            rbac.Role  `json:"role"`
	PermissionLevel rbac.Level `json:"permission_level"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ChangePermissionsRequest struct {
	PermissionLevel *int `json:"permission_level"`
}

type ChangePermissionsResponse struct {
	Message         string     `json:"message"`
	PermissionLevel rbac.Level `json:"permission_level"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.Name(fieldFirstName, req.FirstName); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Name(fieldLastName, req.LastName); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Name(fieldUsername, req.Username); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Password(req.Password); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	role, err := rbac.ParseRole(req.Role)
	if err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	passwordHash, err := password.HashWithCost(req.Password, h.bcryptCost)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgPasswordProcessFail)
	}

	acc, err := h.accounts.Create(c.Request().Context(), account.CreateAccountInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    passwordHash,
		Role:            role,
		PermissionLevel: rbac.DefaultLevel(role),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return respondError(c, http.StatusConflict, msgEmailAlreadyExists)
		}
		return respondError(c, http.StatusInternalServerError, msgCreateAccountFail)
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		ID:              acc.ID,
		FirstName:       acc.FirstName,
		LastName:        acc.LastName,
		Username:        acc.Username,
		Email:           acc.Email,
		Role:            acc.Role,
		PermissionLevel: acc.PermissionLevel,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	acc, err := h.accounts.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a bcrypt round so the unknown-email path does not
			// return measurably faster than a wrong password.
			password.Verify(req.Password, dummyBcryptHash)
			return respondError(c, http.StatusNotFound, msgAccountNotFound)
		}
		return respondError(c, http.StatusInternalServerError, msgLoginFail)
	}

	if !password.Verify(req.Password, acc.PasswordHash) {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := h.jwtService.Issue(acc)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgGenerateTokenFail)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// ChangePermissions mutates the stored permission level independently
// of role. Already-issued tokens keep their embedded level until they
// expire; the change shows up at the target's next login.
func (h *AuthHandler) ChangePermissions(c echo.Context) error {
	id, err := parseIDParam(c, msgInvalidAccountID)
	if err != nil {
		return handleHTTPError(c, err)
	}

	var req ChangePermissionsRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.PermissionLevel == nil || !rbac.ValidLevel(rbac.Level(*req.PermissionLevel)) {
		return respondError(c, http.StatusBadRequest, msgInvalidPermissionLevel)
	}

	acc, err := h.accounts.UpdatePermissionLevel(c.Request().Context(), id, rbac.Level(*req.PermissionLevel))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgAccountNotFound)
		}
		return respondError(c, http.StatusInternalServerError, msgUpdatePermissionsFail)
	}

	return c.JSON(http.StatusOK, ChangePermissionsResponse{
		Message:         msgPermissionsUpdated,
		PermissionLevel: acc.PermissionLevel,
	})
}
