package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		user User
		want []string
	}{
		{
			name: "valid user",
			user: User{AdminName: "John Doe", UserID: "john123", PhoneNumber: "1234567890"},
			want: nil,
		},
		{
			name: "admin name too short",
			user: User{AdminName: "Jo", UserID: "john123", PhoneNumber: "1234567890"},
			want: []string{"Admin name must be at least 3 characters long"},
		},
		{
			name: "admin name too long",
			user: User{AdminName: strings.Repeat("a", 51), UserID: "john123", PhoneNumber: "1234567890"},
			want: []string{"Admin name cannot exceed 50 characters"},
		},
		{
			name: "user id too short",
			user: User{AdminName: "John Doe", UserID: "jd", PhoneNumber: "1234567890"},
			want: []string{"User ID must be at least 3 characters long"},
		},
		{
			name: "user id too long",
			user: User{AdminName: "John Doe", UserID: strings.Repeat("j", 31), PhoneNumber: "1234567890"},
			want: []string{"User ID cannot exceed 30 characters"},
		},
		{
			name: "phone too short",
			user: User{AdminName: "John Doe", UserID: "john123", PhoneNumber: "123456789"},
			want: []string{"Please enter a valid phone number"},
		},
		{
			name: "phone too long",
			user: User{AdminName: "John Doe", UserID: "john123", PhoneNumber: "1234567890123456"},
			want: []string{"Please enter a valid phone number"},
		},
		{
			name: "phone with letters",
			user: User{AdminName: "John Doe", UserID: "john123", PhoneNumber: "12345abcde"},
			want: []string{"Please enter a valid phone number"},
		},
		{
			name: "multiple violations",
			user: User{AdminName: "J", UserID: "j", PhoneNumber: "1"},
			want: []string{
				"Admin name must be at least 3 characters long",
				"User ID must be at least 3 characters long",
				"Please enter a valid phone number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Validate())
		})
	}
}
