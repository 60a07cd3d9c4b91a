package models

type Mood struct {
	ID   int    `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}
