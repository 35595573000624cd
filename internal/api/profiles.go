package api

import (
	"net/http"

	"github.com/fanctrld/fanctrld/internal/profiles"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func registerProfileEndpoints(rest *echo.Echo) {
	group := rest.Group("/profile")

	group.GET("/", getProfiles)
	group.GET("/:"+urlParamId+"/", getProfile)
}

// returns the full profile table, built-in and custom profiles alike
func getProfiles(c echo.Context) error {
	data := reprint.This(profiles.ProfileMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getProfile(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := profiles.ProfileMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}
