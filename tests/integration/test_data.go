package integration

import (
	"fmt"
	"time"
)

// TestUser generates unique test user credentials using a timestamp
func TestUser(suffix string) (name, email, password string) {
	ts := time.Now().UnixNano()
	name = "test-" + suffix
	email = fmt.Sprintf("test-%d-%s@example.com", ts, suffix)
	password = "TestPassword123"
	return
}
