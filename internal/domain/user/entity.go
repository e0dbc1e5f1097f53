package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleWorker),
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	WorkerID     *string // set when the account belongs to a field worker
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
