package handler

import (
	"errors"
	"net/http"
	"strconv"

	"wholesale-portal/internal/dto"
	"wholesale-portal/internal/middleware"
	"wholesale-portal/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.IdentityFromContext(c)

	profile, err := h.userService.GetProfile(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, service.ErrUserNotFound.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.ProfileResponse{Profile: profile})
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.IdentityFromContext(c)

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	profile, err := h.userService.UpdateProfile(ctx, identity.UserID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, service.ErrUserNotFound.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.ProfileResponse{Profile: profile})
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.IdentityFromContext(c)

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ChangePassword(ctx, identity.UserID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			return echo.NewHTTPError(http.StatusBadRequest, service.ErrWrongPassword.Error())
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, service.ErrUserNotFound.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.MessageResponse{Message: "Password changed successfully"})
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateUser(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, service.ErrEmailTaken.Error())
		}
		return err
	}

	return c.JSON(http.StatusCreated, &dto.CreateUserResponse{
		User:    user,
		Message: "User created successfully. Default password is " + service.DefaultPassword,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.UsersResponse{Users: users})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.IdentityFromContext(c)

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.userService.DeleteUser(ctx, identity.UserID, uint(userID)); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDelete):
			return echo.NewHTTPError(http.StatusBadRequest, service.ErrSelfDelete.Error())
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, service.ErrUserNotFound.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.MessageResponse{Message: "User deleted successfully"})
}
