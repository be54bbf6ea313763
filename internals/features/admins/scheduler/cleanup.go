package scheduler

import (
	"context"
	"log"
	"time"

	"womim_backend/internals/configs"
	"womim_backend/internals/features/admins/service"
)

// StartSessionCleanupScheduler deletes expired admin_sessions rows on a
// fixed interval (default 24h).
func StartSessionCleanupScheduler(sessions *service.SessionService) {
	go func() {
		intervalHours := configs.GetEnvInt("SESSION_CLEANUP_INTERVAL_HOURS", 24)

		for {
			log.Println("[CLEANUP] removing expired admin sessions...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := sessions.DeleteExpired(ctx)
			cancel()

			if err != nil {
				log.Printf("[CLEANUP ERROR] delete expired sessions: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d expired sessions removed", n)
			} else {
				log.Println("[CLEANUP] no expired sessions")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
