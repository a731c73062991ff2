package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/messaging"
	"clinic-service/internal/app/drivers/storage"
	"clinic-service/internal/app/services/appointments"
	"clinic-service/internal/app/services/doctors"
	"clinic-service/internal/app/services/patients"
	"clinic-service/internal/app/services/shared/mailer"
	"clinic-service/internal/app/services/shared/redis"
	minioStorage "clinic-service/internal/app/services/shared/storage"
	"clinic-service/internal/app/services/slots"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	requestLogger := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		requestLogger.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, requestLogger)
	redisClient := database.NewRedisClient(driverConfig, requestLogger)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, requestLogger)
	minioClient := storage.NewMinio(driverConfig, requestLogger)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			requestLogger.Fatalf("Server failed to start: %v", err)
		}
	}()
	requestLogger.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	requestLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		requestLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	requestLogger.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		bootstrap.RequestLogger.Fatalf("Failed to initialize mailer service: %v", err)
	}
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, redisRepository, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, redisRepository, mailerService, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Slot
	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	slotUsecase := slots.NewSlotUsecase(slotMongoRepository, bootstrap.Logger)
	slotController := slots.NewSlotController(bootstrap.Logger, slotUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, slotMongoRepository, doctorMongoRepository, patientMongoRepository, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.RequestLogger,
		mw,
		doctorController,
		patientController,
		slotController,
		appointmentController,
	)
}
