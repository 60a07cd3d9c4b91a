package database

import (
	"DateMate/config/environment"
	"context"
	"encoding/base64"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client

// InitFirebase initializes the Firebase app and the Firestore client
func InitFirebase() {
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		log.Fatal("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		log.Fatalf("Failed to decode Firebase credentials: %v", err)
	}

	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID environment variable is missing")
	}

	ctx := context.Background()
	firestoreOpt := option.WithCredentialsJSON(decodedCredentials)

	config := &firebase.Config{
		ProjectID: projectID,
	}
	app, err := firebase.NewApp(ctx, config, firestoreOpt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}
	FirebaseApp = app

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	log.Println("Firebase Firestore initialized successfully")
}

// GetFirestoreClient returns the Firestore client instance
func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}
