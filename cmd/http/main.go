package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/delivery/http/controllers"
	"clinicore-service/internal/app/delivery/http/middlewares"
	"clinicore-service/internal/app/delivery/http/routers"
	"clinicore-service/internal/app/drivers/database"
	"clinicore-service/internal/app/drivers/logger"
	"clinicore-service/internal/app/services/core/appointments"
	"clinicore-service/internal/app/services/core/auth"
	"clinicore-service/internal/app/services/core/dashboard"
	"clinicore-service/internal/app/services/core/invoices"
	"clinicore-service/internal/app/services/core/messaging"
	"clinicore-service/internal/app/services/core/patients"
	"clinicore-service/internal/app/services/core/session"
	"clinicore-service/internal/app/services/core/users"
	sharedredis "clinicore-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User and auth
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, patientMongoRepository)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	// Invoice
	invoiceMongoRepository := invoices.NewInvoiceMongoRepository(bootstrap.MongoDB, dbName)
	invoiceUsecase := invoices.NewInvoiceUsecase(invoiceMongoRepository, patientMongoRepository)
	invoiceController := controllers.NewInvoiceController(bootstrap.Logger, invoiceUsecase, bootstrap.InternalConfig)

	// Messaging
	threadMongoRepository := messaging.NewThreadMongoRepository(bootstrap.MongoDB, dbName)
	messageMongoRepository := messaging.NewMessageMongoRepository(bootstrap.MongoDB, dbName)
	messagingUsecase := messaging.NewMessagingUsecase(bootstrap.Logger, threadMongoRepository, messageMongoRepository, patientMongoRepository)
	messagingController := controllers.NewMessagingController(bootstrap.Logger, messagingUsecase, bootstrap.InternalConfig)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(patientMongoRepository, appointmentMongoRepository)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		appointmentController,
		invoiceController,
		messagingController,
		dashboardController,
	)
}
