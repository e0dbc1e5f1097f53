package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID                    string
	FirstName             string
	LastName              string
	Address               string
	Phone                 *string
	ContractedHoursPerMth decimal.Decimal // contracted care hours per calendar month
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
