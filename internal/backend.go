package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fanctrld/fanctrld/internal/api"
	"github.com/fanctrld/fanctrld/internal/configuration"
	"github.com/fanctrld/fanctrld/internal/control_loop"
	"github.com/fanctrld/fanctrld/internal/controller"
	"github.com/fanctrld/fanctrld/internal/fans"
	"github.com/fanctrld/fanctrld/internal/persistence"
	"github.com/fanctrld/fanctrld/internal/profiles"
	"github.com/fanctrld/fanctrld/internal/schedule"
	"github.com/fanctrld/fanctrld/internal/sensors"
	"github.com/fanctrld/fanctrld/internal/statistics"
	"github.com/fanctrld/fanctrld/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.FatalWithoutStacktrace("Fan control requires root permissions to be able to modify fan speeds, please run fanctrld as root")
	}

	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to initialize persistence: %v", err)
	}

	sched, sensor, fan := InitializeObjects()

	var controlLoop control_loop.DutyControlLoop
	if maxChange := configuration.CurrentConfig.MaxDutyChangePerCycle; maxChange > 0 {
		controlLoop = control_loop.NewDirectControlLoop(&maxChange)
	} else {
		controlLoop = control_loop.NewDirectControlLoop(nil)
	}

	fanController := controller.NewFanController(
		pers, fan, sensor, sched, controlLoop,
		configuration.CurrentConfig.UpdateInterval,
		configuration.CurrentConfig.InitialSpinupDelay,
	)
	statistics.Register(statistics.NewControllerCollector([]controller.FanController{fanController}))

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if configuration.CurrentConfig.Statistics.Enabled {
			// === Prometheus Exporter
			port := configuration.CurrentConfig.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", port),
				Handler: promhttp.Handler(),
			}

			g.Add(func() error {
				ui.Info("Starting statistics server on port %d...", port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error running statistics server: %v", err)
				}
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err == nil {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		if configuration.CurrentConfig.Api.Enabled {
			// === REST Api
			echoRest := api.CreateRestService(sched)
			address := fmt.Sprintf("%s:%d",
				configuration.CurrentConfig.Api.Host,
				configuration.CurrentConfig.Api.Port,
			)

			g.Add(func() error {
				ui.Info("Starting REST api server on %s...", address)
				if err := echoRest.Start(address); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			}, func(err error) {
				if err != nil {
					ui.Warning("Error running REST api server: %v", err)
				}
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := echoRest.Shutdown(timeoutCtx); err == nil {
					ui.Info("REST api server stopped.")
				}
			})
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan '%s' stopped.", fan.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error running fan controller: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received exit signal, shutting down...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// InitializeObjects loads the profile table and schedule, validates them and
// builds the sensor and fan. Any error here is unrecoverable, the daemon must
// not start with a broken configuration.
func InitializeObjects() (schedule.Schedule, sensors.Sensor, fans.Fan) {
	config := &configuration.CurrentConfig
	if err := configuration.Validate(config); err != nil {
		ui.FatalWithoutStacktrace("Invalid configuration: %v", err)
	}

	if err := profiles.LoadTable(config.Profiles); err != nil {
		ui.FatalWithoutStacktrace("Invalid profile table: %v", err)
	}

	scheduleConfig, err := configuration.ReadScheduleFile(config.SchedulePath)
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to read schedule file %s: %v", config.SchedulePath, err)
	}
	sched := scheduleConfig.Schedule()

	// both profiles must exist before the loop starts
	for _, profileName := range []string{sched.DayProfile, sched.NightProfile} {
		if _, err := profiles.GetProfile(profileName); err != nil {
			ui.FatalWithoutStacktrace("Unable to use schedule: %v. Run 'fanctrld profile list' to list available profiles.", err)
		}
	}

	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %s: %v", config.Sensor.Id, err)
	}
	if currentValue, err := sensor.GetValue(); err != nil {
		ui.Warning("Error reading sensor '%s': %v", sensor.GetId(), err)
	} else {
		sensor.AppendValue(currentValue)
	}
	sensors.SensorMap.Set(sensor.GetId(), sensor)
	statistics.Register(statistics.NewSensorCollector([]sensors.Sensor{sensor}))

	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		ui.Fatal("Unable to process fan configuration: %s: %v", config.Fan.Id, err)
	}
	fans.FanMap.Set(fan.GetId(), fan)
	statistics.Register(statistics.NewFanCollector([]fans.Fan{fan}))

	return sched, sensor, fan
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
	}
	return strings.TrimSpace(string(stdout))
}
