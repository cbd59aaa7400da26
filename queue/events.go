package queue

const (
	KeyUserRegistered = "user.registered"
	KeyUserLoggedIn   = "user.loggedin"
)

type UserRegistered struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type UserLoggedIn struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
