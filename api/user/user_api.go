package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"erp.GO/api"
	entity "erp.GO/model/entity"
)

func init() {
	api.RegisterModule(RegisterUserRoutes)
}

// RegisterUserRoutes exposes console users and roles as plain data surfaces.
// Permission enforcement happens outside this service.
func RegisterUserRoutes(apiGroup *echo.Group, db *gorm.DB) {
	users := apiGroup.Group("/users")

	users.GET("", func(c echo.Context) error {
		var list []entity.AdminUser
		if err := db.Order("user_id").Find(&list).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": list, "total": len(list)})
	})

	users.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		var u entity.AdminUser
		err = db.First(&u, "user_id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, u)
	})

	users.POST("", func(c echo.Context) error {
		var u entity.AdminUser
		if err := c.Bind(&u); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if u.Username == nil || *u.Username == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
		}
		if err := db.Create(&u).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, u)
	})

	users.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		var u entity.AdminUser
		if err := c.Bind(&u); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		u.UserID = uint(id)
		if err := db.Save(&u).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, u)
	})

	users.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}
		if err := db.Delete(&entity.AdminUser{}, "user_id = ?", id).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})

	roles := apiGroup.Group("/roles")

	roles.GET("", func(c echo.Context) error {
		var list []entity.AuthorizationRole
		if err := db.Order("role_id").Find(&list).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": list, "total": len(list)})
	})

	roles.GET("/:id/rules", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role id"})
		}
		var rules []entity.AuthorizationRule
		if err := db.Where("role_id = ?", id).Find(&rules).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": rules, "total": len(rules)})
	})
}
