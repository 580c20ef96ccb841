package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReservationID creates a unique reservation ID with timestamp
func GenerateReservationID() string {
	now := time.Now()

	// Format: RES-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RES-%s-%s-%s", datePart, timePart, randomPart)
}
