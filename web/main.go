package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/web/server"
)

// Helper to get environment variables with a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	_ = godotenv.Load(getEnv("RAYTRACER_ENV_FILE", ".env"))

	defaultPort, err := strconv.Atoi(getEnv("RAYTRACER_PORT", "8080"))
	if err != nil {
		defaultPort = 8080
	}
	port := flag.Int("port", defaultPort, "Port to serve on")
	flag.Parse()

	s3Config := output.S3Config{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}

	var publisher *output.Publisher
	if s3Config.Enabled() {
		publisher, err = output.NewPublisher(s3Config, server.NewWebLogger("publisher", nil))
		if err != nil {
			log.Fatalf("Failed to create S3 publisher: %v", err)
		}
		log.Printf("Publishing renders to bucket %s", s3Config.Bucket)
	}

	webServer := server.NewServer(*port, publisher)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
