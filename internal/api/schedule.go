package api

import (
	"net/http"
	"time"

	"github.com/fanctrld/fanctrld/internal/schedule"
	"github.com/labstack/echo/v4"
)

type scheduleDto struct {
	DayProfile    string `json:"dayProfile"`
	NightProfile  string `json:"nightProfile"`
	NightHours    string `json:"nightHours"`
	ActiveProfile string `json:"activeProfile"`
	Night         bool   `json:"night"`
}

func registerScheduleEndpoints(rest *echo.Echo, sched schedule.Schedule) {
	group := rest.Group("/schedule")

	group.GET("/", func(c echo.Context) error {
		now := time.Now()
		return c.JSONPretty(http.StatusOK, &scheduleDto{
			DayProfile:    sched.DayProfile,
			NightProfile:  sched.NightProfile,
			NightHours:    sched.NightWindow.String(),
			ActiveProfile: sched.ActiveProfile(now),
			Night:         sched.IsNight(now),
		}, indentationChar)
	})
}
