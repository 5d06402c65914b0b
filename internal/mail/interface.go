// Package mail renders and delivers transactional emails through an external
// provider API.
package mail

import "context"

// Email is a single rendered message ready for delivery.
type Email struct {
	ToName    string
	ToAddress string
	Subject   string
	Text      string
	HTML      string
}

//go:generate mockgen -package mockmail -source=interface.go -destination=mock/mockmail.go *
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
