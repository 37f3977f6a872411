package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/moodtrack/moodjournal/config"
	"github.com/moodtrack/moodjournal/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@moodjournal.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, 'user')
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	// A week of sample check-ins so listings and stats have data
	type sample struct {
		mood      string
		intensity int
		energy    int
		sleep     float64
		quality   int
		exercise  bool
		notes     string
		daysAgo   int
	}
	samples := []sample{
		{"happy", 8, 7, 7.5, 4, true, "Long walk after work", 1},
		{"calm", 6, 5, 8, 4, false, "Quiet day, read a lot", 2},
		{"anxious", 7, 4, 5.5, 2, false, "Deadline pressure", 3},
		{"happy", 9, 8, 8, 5, true, "Dinner with friends", 4},
		{"sad", 4, 3, 6, 3, false, "", 5},
		{"calm", 5, 6, 7, 4, true, "Morning run", 6},
		{"happy", 7, 7, 7, 4, false, "Good news at work", 7},
	}
	for _, s := range samples {
		date := time.Now().UTC().AddDate(0, 0, -s.daysAgo)
		if _, err := db.Exec(`
			INSERT INTO mood_logs
				(user_id, mood, intensity, energy_level, sleep_hours, sleep_quality, exercise, notes, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, id, s.mood, s.intensity, s.energy, s.sleep, s.quality, s.exercise, s.notes, date); err != nil {
			log.Fatalf("failed to seed mood log: %v", err)
		}
	}
	fmt.Printf("seeded %d mood logs\n", len(samples))
}
