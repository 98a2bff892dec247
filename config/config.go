package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	SmtpHost     string
	SmtpPort     int
	SmtpUsername string
	SmtpPassword string
	SmtpFrom     string
	SmtpFromName string
	SmtpUseTLS   bool

	LabelStore string // "disk" or "minio"
	LabelsDir  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	AdminEmail    string
	AdminPassword string
	AdminName     string
	AdminSurname  string
	AdminCompany  string

	EmailTemplatesFile string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "winelabelmaker")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "winelabel")
	ServerPort = getEnv("SERVER_PORT", "8080")

	SmtpHost = getEnv("SMTP_HOST", "localhost")
	SmtpPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	SmtpUsername = getEnv("SMTP_USERNAME", "")
	SmtpPassword = getEnv("SMTP_PASSWORD", "")
	SmtpFrom = getEnv("SMTP_FROM", "noreply@winelabelmaker.it")
	SmtpFromName = getEnv("SMTP_FROM_NAME", "Wine Label Maker")
	SmtpUseTLS, _ = strconv.ParseBool(getEnv("SMTP_USE_TLS", "true"))

	LabelStore = getEnv("LABEL_STORE", "disk")
	LabelsDir = getEnv("LABELS_DIR", "wwwroot/labels")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "labels")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	AdminEmail = getEnv("ADMIN_EMAIL", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")
	AdminName = getEnv("ADMIN_NAME", "Admin")
	AdminSurname = getEnv("ADMIN_SURNAME", "")
	AdminCompany = getEnv("ADMIN_COMPANY", "Wine Label Maker")

	EmailTemplatesFile = getEnv("EMAIL_TEMPLATES_FILE", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
