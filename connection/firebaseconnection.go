package connection

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FBConnection initializes the Firebase app and returns its Firestore
// client. Credentials come from GOOGLE_APPLICATION_CREDENTIALS, loaded from
// .env when present.
func FBConnection(ctx context.Context, log *zap.Logger) (*firestore.Client, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found")
	}

	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return nil, fmt.Errorf("environment variable GOOGLE_APPLICATION_CREDENTIALS is not set")
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firestore client: %w", err)
	}

	log.Info("firestore connection successful")
	return client, nil
}
