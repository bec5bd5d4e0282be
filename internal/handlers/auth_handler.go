package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/repository"
	"github.com/clinicdesk/clinic-api/internal/utils"
	"github.com/clinicdesk/clinic-api/internal/validation"
)

const sessionCookieMaxAge = 24 * 60 * 60 // seconds

// setSessionCookie delivers the token as an HTTP-only cookie. Production
// needs the cross-site attributes; development keeps the relaxed ones so
// plain-HTTP frontends still work.
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.Config.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie("token", token, maxAge, "/", "", h.Config.IsProduction(), true)
}

// Login handles POST /user/login.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondFailed(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same answer as a wrong password so callers cannot probe
			// which emails exist.
			respondFailed(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.repoError(c, err, "")
		return
	}

	if user.IsLock {
		respondFailed(c, http.StatusForbidden, "Account is locked. Contact admin.")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondFailed(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateSessionToken(h.Config.JWTSecret, user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		h.Logger.Error("failed to sign session token", zap.Error(err))
		respondFailed(c, http.StatusInternalServerError, "Could not generate token")
		return
	}

	h.setSessionCookie(c, token, sessionCookieMaxAge)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"message": gin.H{
			"en": "logged in successfully",
			"ar": "تم تسجيل الدخول بنجاح",
		},
		"token": token,
	})
}

// Register handles POST /user/register.
func (h *Handler) Register(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "failed",
			"message": gin.H{
				"en": "Passwords do not match",
				"ar": "كلمات المرور غير متطابقة",
			},
		})
		return
	}

	user := req.ToUser()
	user.OTP = fmt.Sprintf("%06d", 100000+rand.Intn(900000))
	expires := time.Now().Add(10 * time.Minute)
	user.OTPExpiresAt = &expires

	created, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{
				"status": "failed",
				"message": gin.H{
					"en": "User already exists",
					"ar": "المستخدم موجود بالفعل",
				},
			})
			return
		}
		h.repoError(c, err, "")
		return
	}

	// No mail transport is wired; the code is logged for the operator
	// until one is.
	h.Logger.Info("registration OTP issued",
		zap.String("email", created.Email),
		zap.Time("expiresAt", expires),
	)

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"message": gin.H{
			"en": "User created successfully",
			"ar": "تم إنشاء المستخدم بنجاح",
		},
	})
}

// Logout handles POST /user/logout: clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"message": gin.H{
			"en": "Logged out successfully",
			"ar": "تم تسجيل الخروج بنجاح",
		},
	})
}

// UpdateUser handles PATCH /user/:id. A password in the payload is
// re-hashed by the repository; nothing else touches the stored hash.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondFailed(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		respondFailed(c, http.StatusBadRequest, "No update fields provided")
		return
	}

	user, err := h.Users.UpdateByID(c.Request.Context(), id, fields)
	if err != nil {
		h.repoError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": user},
	})
}
