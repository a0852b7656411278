package model

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
