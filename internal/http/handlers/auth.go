package handlers

import (
	"net/http"
	"time"

	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// AuthHandler serves registration and login.
type AuthHandler struct {
	Store  store.Store
	Secret []byte
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Store.FindWhere(ctx, "users", store.Query{Where: map[string]any{"email": req.Email}})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	userID := uuid.NewString()
	var phone any
	if req.Phone != "" {
		phone = req.Phone
	}
	_, err = h.Store.Insert(ctx, "users", store.Record{
		"id":       userID,
		"name":     req.Name,
		"email":    req.Email,
		"phone":    phone,
		"password": string(hash),
		"role":     "USER",
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    gin.H{"id": userID, "name": req.Name, "email": req.Email, "role": "USER"},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
//
// Unknown email and wrong password both answer 401 with the same body so the
// response does not reveal which one failed.
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	users, err := h.Store.FindWhere(c.Request.Context(), "users", store.Query{Where: map[string]any{"email": req.Email}})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(store.AsString(user["password"])), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user["id"],
		"email": user["email"],
		"role":  user["role"],
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(h.Secret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tokenString,
		"user": gin.H{
			"id":    user["id"],
			"name":  user["name"],
			"email": user["email"],
			"role":  user["role"],
		},
	})
}
