package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/winelabelmaker/winelabel-go/config"
	"github.com/winelabelmaker/winelabel-go/db"
	_ "github.com/winelabelmaker/winelabel-go/docs"
	"github.com/winelabelmaker/winelabel-go/email"
	"github.com/winelabelmaker/winelabel-go/handlers"
	"github.com/winelabelmaker/winelabel-go/labelstore"
	"github.com/winelabelmaker/winelabel-go/middleware"
	"github.com/winelabelmaker/winelabel-go/repositories"
	"github.com/winelabelmaker/winelabel-go/routes"
	"github.com/winelabelmaker/winelabel-go/services"
)

// @title Wine Label Maker API
// @version 1.0
// @description Back office for custom wine label requests: customer accounts,
// @description request workflow and outbound customer mails.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	db.SeedAdmin()

	templates := email.DefaultTemplates()
	if config.EmailTemplatesFile != "" {
		if err := templates.LoadOverrides(config.EmailTemplatesFile); err != nil {
			log.Fatalf("Failed to load email templates: %v", err)
		}
	}

	sender := email.NewSMTPSender(email.Config{
		Host:     config.SmtpHost,
		Port:     config.SmtpPort,
		Username: config.SmtpUsername,
		Password: config.SmtpPassword,
		From:     config.SmtpFrom,
		FromName: config.SmtpFromName,
		UseTLS:   config.SmtpUseTLS,
	})

	store, err := newLabelStore()
	if err != nil {
		log.Fatalf("Failed to initialize label store: %v", err)
	}

	repos := repositories.New()
	svc := services.New(repos, templates, sender)
	h := handlers.New(svc, repos, templates, sender, store)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	routes.RegisterRoutes(router, h)

	if err := router.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newLabelStore() (labelstore.Store, error) {
	if config.LabelStore == "minio" {
		return labelstore.NewMinioStore(context.Background(), labelstore.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			UseSSL:    config.MinioUseSSL,
			Bucket:    config.MinioBucket,
		})
	}
	return labelstore.NewDiskStore(config.LabelsDir)
}
