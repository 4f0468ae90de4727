package handler

import (
	"io"
	"log/slog"
	"net/http"

	"dipto/internal/delivery/http/middleware"
	"dipto/internal/delivery/http/response"
	"dipto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Profile images above this size are rejected before upload.
const maxProfileImageBytes = 5 << 20

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Register handles the sign-up request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account created")
}

// UpdateProfile updates the signed-in account's display name and,
// when a multipart image is attached, its profile picture.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	uid, ok := c.Get(middleware.ContextKeyUID).(string)
	if !ok || uid == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not signed in")
	}

	input := &usecase.UpdateProfileInput{
		DisplayName: c.FormValue("display_name"),
	}

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxProfileImageBytes {
			return response.BadRequest(c, "IMAGE_TOO_LARGE", "Profile image exceeds 5MB")
		}

		src, err := file.Open()
		if err != nil {
			return errors.WithStack(err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return errors.WithStack(err)
		}

		input.ImageData = data
		input.ImageContentType = file.Header.Get("Content-Type")
	}

	account, err := h.uc.UpdateProfile(c.Request().Context(), uid, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Profile updated")
}
