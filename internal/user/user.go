package user

import (
	"os"
	"os/user"
)

// CurrentRecruiterID returns the identity used to key the per-user pipeline
// settings row. It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "local" - final fallback to ensure a non-empty value
func CurrentRecruiterID() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "local"
		}
		return username
	}
	return currentUser.Username
}
