package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role enumerates the account types the platform supports.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSme    Role = "SME"
	RoleFunder Role = "FUNDER"
)

// ParseRole normalizes and validates a user-supplied role string.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSme:
		return RoleSme, nil
	case RoleFunder:
		return RoleFunder, nil
	default:
		return "", fmt.Errorf("invalid user type %q", value)
	}
}

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusPending   UserStatus = "PENDING"
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// ParseUserStatus validates a status string.
func ParseUserStatus(value string) (UserStatus, error) {
	switch UserStatus(strings.ToUpper(strings.TrimSpace(value))) {
	case UserStatusPending:
		return UserStatusPending, nil
	case UserStatusActive:
		return UserStatusActive, nil
	case UserStatusSuspended:
		return UserStatusSuspended, nil
	default:
		return "", fmt.Errorf("invalid account status %q", value)
	}
}

// User is the domain model for platform accounts of every role.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	UserType     Role
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile carries the self-service profile attached to every account.
// Created at signup, removed together with the account.
type UserProfile struct {
	UserID    string
	Avatar    string
	Bio       string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
