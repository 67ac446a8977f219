package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mehlab1/Turf-Booking-POC/internal/service"
	"github.com/mehlab1/Turf-Booking-POC/internal/storage"
)

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateCredentials(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		session, err := service.Login(c.Request.Context(), app.Users(), app.Tokens(), &req)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidCredentials) {
				HandleError(c, app.Logger(), err, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Login failed")
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func PostSignup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateCredentials(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		session, err := service.Signup(c.Request.Context(), app.Users(), app.Tokens(), &req)
		if err != nil {
			if errors.Is(err, storage.ErrEmailExists) {
				HandleError(c, app.Logger(), err, http.StatusBadRequest, "Email already exists")
				return
			}
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Signup failed")
			return
		}

		app.Logger().Infof("new signup: %s (id=%d)", session.User.Email, session.User.ID)
		c.JSON(http.StatusOK, session)
	}
}
