package main

import (
	"fmt"
	"net/http"

	"github.com/sanketsmane/ems-backend-go/internal/config"
	appHTTP "github.com/sanketsmane/ems-backend-go/internal/handler/http"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/cron"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/database"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/jwt"
	"github.com/sanketsmane/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sanketsmane/ems-backend-go/internal/service/attendance"
	shiftService "github.com/sanketsmane/ems-backend-go/internal/service/shift"
	worksheetService "github.com/sanketsmane/ems-backend-go/internal/service/worksheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	worksheetRepo := postgresql.NewWorksheetRepository(db)
	shiftConfigRepo := postgresql.NewShiftConfigRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := worksheetService.NewCalculator()
	resolver := shiftService.NewResolver(shiftConfigRepo)

	worksheetSvc := worksheetService.NewWorksheetService(db, worksheetRepo, calculator)
	configSvc := shiftService.NewConfigService(db, shiftConfigRepo, resolver)
	attendanceSvc := attendanceService.NewAttendanceService(db, worksheetRepo, resolver, calculator)

	worksheetHandler := appHTTP.NewWorksheetHandler(worksheetSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(configSvc)

	scheduler := cron.NewScheduler()
	worksheetJobs := cron.NewWorksheetJobs(worksheetRepo, shiftConfigRepo, resolver)
	worksheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		worksheetHandler,
		attendanceHandler,
		shiftHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
