package utils

import (
	"fmt"
	"log"
	"os"
)

// SendPasswordResetEmail simulates sending a password reset email.
// In a real deployment this would go through an email service provider.
func SendPasswordResetEmail(email, token string) error {
	baseURL := os.Getenv("DASHBOARD_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	resetLink := fmt.Sprintf("%s/reset-password-page?token=%s", baseURL, token)

	log.Println("========================================================")
	log.Printf("SIMULATING SENDING PASSWORD RESET EMAIL")
	log.Printf("To: %s", email)
	log.Printf("Subject: Reset Your Password")
	log.Printf("Body: To reset your password, please click the following link: %s", resetLink)
	log.Println("========================================================")

	return nil
}
