package handlers

import (
	"net/http"
	"strings"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type routePayload struct {
	Name       string  `json:"nombre" binding:"required"`
	AgencyIDs  []int64 `json:"agenciasIds" binding:"required"`
	StopOrders []int   `json:"ordenAgencias"`
}

// GET /api/rutas (public: feeds the search form)
func GetRoutes(c *gin.Context) {
	repo := repositories.RouteRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/rutas/:id
func GetRouteByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.RouteRepository{DB: intconfig.DB}
	route, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// POST /api/rutas
func CreateRoute(c *gin.Context) {
	var req routePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.AgencyIDs) < 2 {
		RespondError(c, http.StatusBadRequest, "una ruta necesita al menos dos agencias", nil)
		return
	}
	repo := repositories.RouteRepository{DB: intconfig.DB}
	route, err := repo.Create(models.Route{
		Name:       strings.TrimSpace(req.Name),
		AgencyIDs:  req.AgencyIDs,
		StopOrders: req.StopOrders,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// PUT /api/rutas/:id
func UpdateRoute(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req routePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.RouteRepository{DB: intconfig.DB}
	if err := repo.Update(models.Route{
		ID:         id,
		Name:       strings.TrimSpace(req.Name),
		AgencyIDs:  req.AgencyIDs,
		StopOrders: req.StopOrders,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	route, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// DELETE /api/rutas/:id
func DeleteRoute(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.RouteRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
