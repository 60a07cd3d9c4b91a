package environment

import "os"

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetFirebaseKey() string {
	return os.Getenv("FIREBASE_CREDENTIALS_BASE64")
}

func GetFirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}
