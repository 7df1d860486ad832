package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalDB represents a goal record in the database
type GoalDB struct {
	GoalID      uuid.UUID `db:"goal_id"` // Primary key
	UserID      uuid.UUID `db:"user_id"` // Owner
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Goal is the public view of a goal returned by the API.
type Goal struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Public maps a database record to its API view.
func (g *GoalDB) Public() *Goal {
	return &Goal{
		ID:          g.GoalID.String(),
		Name:        g.Name,
		Description: g.Description,
		UserID:      g.UserID.String(),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
