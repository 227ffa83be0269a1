package repositories

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"saturn-server/configs"
	"saturn-server/internal/loggers"
	"saturn-server/internal/models"
)

type dbs struct {
	Postgres *gorm.DB
	S3       *s3.Client
}

// DBS holds the process-wide storage clients, initialized once at startup.
var DBS dbs

func Init() {
	initPostgres()
	initS3()
}

// initPostgres initializes the PostgreSQL connection
func initPostgres() {
	host, port, err := net.SplitHostPort(configs.Configs.Postgres.Address)
	if err != nil {
		configs.Logger.Fatal("Invalid Postgres address", zap.Error(err))
		return
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s",
		host,
		configs.Configs.Postgres.Username,
		configs.Configs.Postgres.Password,
		configs.Configs.Postgres.Database,
		port,
	)

	gormLogger := loggers.NewZapGormLogger(
		gormlogger.Warn,
		200*time.Millisecond,
		true,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		configs.Logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		return
	}

	if err := autoMigrateInOrder(db); err != nil {
		panic("Failed to migrate database")
	}

	DBS.Postgres = db
	configs.Logger.Info("PostgreSQL connected successfully")
}

func autoMigrateInOrder(db *gorm.DB) error {
	// Sessions first, attempt logs reference them.
	modelsInOrder := []interface{}{
		&models.Session{},
		&models.AttemptLog{},
	}

	for _, model := range modelsInOrder {
		if err := db.AutoMigrate(model); err != nil {
			return err
		}
	}
	return nil
}

func initS3() {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(configs.Configs.S3.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				configs.Configs.S3.AccessKey,
				configs.Configs.S3.SecretKey,
				"",
			),
		),
	)
	if err != nil {
		configs.Logger.Fatal("Failed to load AWS S3 config", zap.Error(err))
		return
	}

	DBS.S3 = s3.NewFromConfig(cfg, func(o *s3.Options) {
		// The media bucket may live on any S3-compatible provider.
		if endpoint := configs.Configs.S3.Endpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	configs.Logger.Info("S3 client initialized successfully")
}
