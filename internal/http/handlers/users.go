package handlers

import (
	"net/http"
	"strings"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type userPayload struct {
	DocumentID  string `json:"dni" binding:"required"`
	FirstNames  string `json:"nombres" binding:"required"`
	LastNames   string `json:"apellidos" binding:"required"`
	Age         int    `json:"edad" binding:"required"`
	Permissions string `json:"permisos"`
}

// GET /api/usuarios
func GetUsers(c *gin.Context) {
	repo := repositories.UserRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/usuarios/:id
func GetUserByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/usuarios/dni/:dni
func GetUserByDocumentID(c *gin.Context) {
	dni := strings.TrimSpace(c.Param("dni"))
	if dni == "" {
		RespondError(c, http.StatusBadRequest, "dni es obligatorio", nil)
		return
	}
	repo := repositories.UserRepository{DB: intconfig.DB}
	user, err := repo.GetByDocumentID(dni)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /api/usuarios
func CreateUser(c *gin.Context) {
	var req userPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.UserRepository{DB: intconfig.DB}
	created, err := repo.Create(models.User{
		DocumentID:  strings.TrimSpace(req.DocumentID),
		FirstNames:  req.FirstNames,
		LastNames:   req.LastNames,
		Age:         req.Age,
		Permissions: req.Permissions,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/usuarios/:id
func UpdateUser(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req userPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	user := models.User{
		ID:          id,
		DocumentID:  strings.TrimSpace(req.DocumentID),
		FirstNames:  req.FirstNames,
		LastNames:   req.LastNames,
		Age:         req.Age,
		Permissions: req.Permissions,
	}
	repo := repositories.UserRepository{DB: intconfig.DB}
	if err := repo.Update(user); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/usuarios/:id
func DeleteUser(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.UserRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
