package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/prithvi1320/StyleSphere/ai"
	orderControllers "github.com/prithvi1320/StyleSphere/controllers/order"
	"github.com/prithvi1320/StyleSphere/routes"
	"github.com/prithvi1320/StyleSphere/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store from the persisted snapshot
	s := initStore()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// AI description generator (OpenAI-compatible endpoint)
	generator := ai.NewClient(ai.Config{
		BaseURL: os.Getenv("AI_BASE_URL"),
		APIKey:  os.Getenv("AI_API_KEY"),
		Model:   os.Getenv("AI_MODEL"),
	})

	// Live order feed for the admin dashboard
	hub := orderControllers.NewHub()

	// Setup routes
	routes.SetupRoutes(r, s, generator, hub)

	// Daily snapshot backups at 2 AM, keep 4 days
	if backupDir := os.Getenv("SNAPSHOT_BACKUP_DIR"); backupDir != "" {
		go startDailySnapshotBackup(snapshotPath(), backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func snapshotPath() string {
	if path := os.Getenv("SNAPSHOT_PATH"); path != "" {
		return path
	}
	return "stylesphere_state.json"
}

// initStore loads the snapshot, falling back to the seed dataset on a fresh
// or corrupted install.
func initStore() *store.Store {
	s := store.New(store.FileSnapshotStore{Path: snapshotPath()})
	switch s.Load() {
	case store.LifecycleLoaded:
		log.Printf("✅ Snapshot loaded from %s", snapshotPath())
	case store.LifecycleSeedFallback:
		log.Println("ℹ️ No usable snapshot found, starting from seed data")
	}
	return s
}

func allowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{"*"}
}

// startDailySnapshotBackup copies the snapshot file at a fixed hour every
// day and removes backups older than retention.
func startDailySnapshotBackup(snapshotFile, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next snapshot backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destFile := filepath.Join(backupDir, timestamp+".json")

		if err := copyFile(snapshotFile, destFile); err != nil {
			log.Printf("❌ Failed to back up snapshot: %v", err)
		} else {
			log.Printf("✅ Snapshot backed up to %s", destFile)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(backupDir, entry.Name())); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", entry.Name(), err)
			}
		}
	}
}
