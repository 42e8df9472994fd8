package controllers

import (
	"net/http"
	"os"
	"strings"
	"symptotrack/internal/models"
	"symptotrack/internal/repository"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	repo repository.AccountRepository
}

func NewAuthController(repo repository.AccountRepository) *AuthController {
	return &AuthController{repo: repo}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required" example:"hospital1"`
	Password string `json:"password" binding:"required,min=6" example:"pass123!"`
}

// Register godoc
// @Summary Register a staff account
// @Description Create a hospital staff account with a unique username
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Account credentials"
// @Success 201 {object} map[string]interface{} "Account registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Username already exists"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	exists, err := ac.repo.UsernameExists(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register account",
			"error":   err.Error(),
		})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Username already exists",
			"error":   "Choose a different username",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register account",
			"error":   err.Error(),
		})
		return
	}

	account := models.Account{
		Username: req.Username,
		Password: string(hash),
	}

	if err := ac.repo.Create(&account); err != nil {
		// The unique index is the real guard; the pre-check above only covers
		// the common case.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Username already exists",
				"error":   "Choose a different username",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register account",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Account registered successfully. You can now log in.",
		"data":    nil,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Account credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	account, err := ac.repo.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Username or password is incorrect",
		})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id": account.ID,
		"username":   account.Username,
		"exp":        time.Now().Add(time.Hour * 72).Unix(),
	})

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data":    gin.H{"token": tokenString},
	})
}
