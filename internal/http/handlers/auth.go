package handlers

import (
	"net/http"
	"strings"
	"time"

	intconfig "perubus/internal/config"
	"perubus/internal/domain"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTSecret is set by the router from the environment before any request.
var JWTSecret = []byte("super-secret-key-change-me")

type loginRequest struct {
	Email    string `json:"correo" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.AdminRepository{DB: intconfig.DB}
	admin, hash, err := repo.GetCredentials(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "correo o contrasena incorrectos", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "correo o contrasena incorrectos", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"rol":      "ADMIN",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(JWTSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo generar el token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    signed,
		"tipo":     "Bearer",
		"id":       admin.ID,
		"nombre":   admin.FirstName,
		"apellido": admin.LastName,
		"correo":   admin.Email,
		"rol":      "ADMIN",
	})
}

// GET /api/administradores
func GetAdmins(c *gin.Context) {
	repo := repositories.AdminRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/administradores
func CreateAdmin(c *gin.Context) {
	var req models.Admin
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		RespondError(c, http.StatusBadRequest, "correo y contrasena son obligatorios", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "no se pudo procesar la contrasena", err)
		return
	}

	repo := repositories.AdminRepository{DB: intconfig.DB}
	admin, err := repo.Create(req, string(hash))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// PUT /api/administradores/:id
func UpdateAdmin(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req models.Admin
	if !BindJSONOrError(c, &req) {
		return
	}
	req.ID = id

	hash := ""
	if strings.TrimSpace(req.Password) != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "no se pudo procesar la contrasena", err)
			return
		}
		hash = string(h)
	}

	repo := repositories.AdminRepository{DB: intconfig.DB}
	if err := repo.Update(req, hash); err != nil {
		RespondDomainError(c, err)
		return
	}
	req.Password = ""
	c.JSON(http.StatusOK, req)
}

// DELETE /api/administradores/:id
func DeleteAdmin(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.AdminRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
