package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
)

// Operator is an admin panel account: the person flipping the open flag,
// editing products and watching the order archive.
type Operator struct {
	ID          string
	Username    string
	DisplayName string
	Password    string
}

// NewOperator builds an operator ensuring required invariants.
func NewOperator(id, username, password string) (*Operator, error) {
	operator := &Operator{ID: id}
	if err := operator.SetUsername(username); err != nil {
		return nil, err
	}
	if err := operator.SetPassword(password); err != nil {
		return nil, err
	}
	return operator, nil
}

// SetUsername trims and validates the username.
func (o *Operator) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	o.Username = username
	return nil
}

// SetPassword validates basic password strength.
func (o *Operator) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 6 {
		return ErrWeakPassword
	}
	o.Password = password
	return nil
}

// CheckPassword compares the stored password with the supplied credentials.
func (o *Operator) CheckPassword(password string) bool {
	return strings.TrimSpace(password) != "" && o.Password == strings.TrimSpace(password)
}

// Validate re-applies core invariants for persistence.
func (o *Operator) Validate() error {
	if err := o.SetUsername(o.Username); err != nil {
		return err
	}
	return o.SetPassword(o.Password)
}
