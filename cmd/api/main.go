package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffhive/hrms-backend-go/internal/config"
	appHTTP "github.com/staffhive/hrms-backend-go/internal/handler/http"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
	"github.com/staffhive/hrms-backend-go/internal/pkg/jwt"
	"github.com/staffhive/hrms-backend-go/internal/pkg/storage"
	"github.com/staffhive/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhive/hrms-backend-go/internal/service/attendance"
	authService "github.com/staffhive/hrms-backend-go/internal/service/auth"
	fileService "github.com/staffhive/hrms-backend-go/internal/service/file"
	grievanceService "github.com/staffhive/hrms-backend-go/internal/service/grievance"
	leaveService "github.com/staffhive/hrms-backend-go/internal/service/leave"
	taskService "github.com/staffhive/hrms-backend-go/internal/service/task"
	transferService "github.com/staffhive/hrms-backend-go/internal/service/transfer"
	userService "github.com/staffhive/hrms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	transferRepo := postgresql.NewTransferRepository(db)
	grievanceRepo := postgresql.NewGrievanceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	fileMetaRepo := postgresql.NewFileMetaRepository(db)

	jwtService := jwt.NewJWTService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiration,
		cfg.JWT.RefreshExpiration,
	)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := fileService.NewFileService(fileStorage, fileMetaRepo)
	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo)
	transferSvc := transferService.NewTransferService(db, transferRepo, userRepo)
	grievanceSvc := grievanceService.NewGrievanceService(db, grievanceRepo, fileSvc, fileMetaRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	taskSvc := taskService.NewTaskService(taskRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Transfer:   appHTTP.NewTransferHandler(transferSvc),
		Grievance:  appHTTP.NewGrievanceHandler(grievanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		File:       appHTTP.NewFileHandler(fileSvc),
	}, cfg.App.CORSOrigins, cfg.App.Env)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
