// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/spoutbreeze-be/internal/adapters/db"
	"github.com/ammerola/spoutbreeze-be/internal/core/domain"
	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
	"github.com/ammerola/spoutbreeze-be/internal/pkg/config"
	"github.com/ammerola/spoutbreeze-be/internal/pkg/logger"
)

// SeedFile describes the fixture data loaded into a development database
type SeedFile struct {
	Users []SeedUser `json:"users"`
}

// SeedUser is a user together with the rows it owns
type SeedUser struct {
	KeycloakID string         `json:"keycloak_id"`
	Username   string         `json:"username"`
	Email      string         `json:"email"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Roles      string         `json:"roles"`
	Channels   []SeedChannel  `json:"channels"`
	Endpoints  []SeedEndpoint `json:"endpoints"`
}

// SeedChannel is a channel with its scheduled events
type SeedChannel struct {
	Name   string      `json:"name"`
	Events []SeedEvent `json:"events"`
}

// SeedEvent is scheduled relative to the seeding time
type SeedEvent struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartsInHours int    `json:"starts_in_hours"`
	Occurs        string `json:"occurs"`
}

// SeedEndpoint is an RTMP destination
type SeedEndpoint struct {
	Title     string `json:"title"`
	StreamKey string `json:"stream_key"`
	RtmpURL   string `json:"rtmp_url"`
}

type repositories struct {
	users     ports.UserRepository
	channels  ports.ChannelRepository
	events    ports.EventRepository
	endpoints ports.RtmpRepository
}

// seedStats counts created and skipped rows
type seedStats struct {
	Users     int
	Channels  int
	Events    int
	Endpoints int
	Skipped   int
}

func main() {
	var (
		seedPath = flag.String("file", "", "JSON seed file (built-in demo data when empty)")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
		migrate  = flag.Bool("migrate", true, "Apply migrations before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json", logger.WithService("spoutbreeze-seeder", "", ""))
	log := slogger.Logger

	seed := demoSeed()
	if *seedPath != "" {
		loaded, err := loadSeedFile(*seedPath)
		if err != nil {
			log.Error("failed to load seed file", slog.String("path", *seedPath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		seed = loaded
	}

	if *dryRun {
		printPlan(seed)
		return
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if *migrate {
		if err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
			DatabaseURL: cfg.GetDatabaseURL(),
		}, log, 3); err != nil {
			log.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     2,
		MinConnections:     1,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
	}, log)
	if err != nil {
		log.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	repos := repositories{
		users:     db.NewUserRepository(log),
		channels:  db.NewChannelRepository(log),
		events:    db.NewEventRepository(log),
		endpoints: db.NewRtmpRepository(log),
	}

	var stats seedStats
	err = database.Transaction(ctx, func(tx pgx.Tx) error {
		var err error
		stats, err = apply(ctx, tx, repos, seed, time.Now().UTC())
		return err
	})
	if err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("seeding completed",
		slog.Int("users", stats.Users),
		slog.Int("channels", stats.Channels),
		slog.Int("events", stats.Events),
		slog.Int("endpoints", stats.Endpoints),
		slog.Int("skipped", stats.Skipped))
}

func loadSeedFile(path string) (SeedFile, error) {
	var seed SeedFile
	data, err := os.ReadFile(path)
	if err != nil {
		return seed, err
	}
	if err := json.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("invalid seed file: %w", err)
	}
	return seed, nil
}

// apply inserts the seed. Users that already exist by keycloak id are
// skipped together with everything they own, so reruns are harmless.
func apply(ctx context.Context, q ports.DBTX, repos repositories, seed SeedFile, now time.Time) (seedStats, error) {
	var stats seedStats

	for _, su := range seed.Users {
		_, err := repos.users.FindByKeycloakID(ctx, q, su.KeycloakID)
		if err == nil {
			stats.Skipped++
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return stats, fmt.Errorf("failed to look up user %s: %w", su.Username, err)
		}

		roles := su.Roles
		if roles == "" {
			roles = domain.DefaultUserRole
		}
		user := &domain.User{
			ID:         uuid.New(),
			KeycloakID: su.KeycloakID,
			Username:   su.Username,
			Email:      su.Email,
			FirstName:  su.FirstName,
			LastName:   su.LastName,
			Roles:      roles,
			IsActive:   true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repos.users.Create(ctx, q, user); err != nil {
			return stats, fmt.Errorf("failed to create user %s: %w", su.Username, err)
		}
		stats.Users++

		for _, sc := range su.Channels {
			channel := &domain.Channel{
				ID:        uuid.New(),
				Name:      sc.Name,
				CreatorID: user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repos.channels.Create(ctx, q, channel); err != nil {
				return stats, fmt.Errorf("failed to create channel %s: %w", sc.Name, err)
			}
			stats.Channels++

			for _, se := range sc.Events {
				occurs := domain.Occurrence(se.Occurs)
				if occurs == "" {
					occurs = domain.OccursOnce
				}
				event := &domain.Event{
					Title:        se.Title,
					Description:  se.Description,
					Occurs:       occurs,
					StartTime:    now.Add(time.Duration(se.StartsInHours) * time.Hour).Truncate(time.Minute),
					Timezone:     "UTC",
					CreatorID:    user.ID,
					ChannelID:    channel.ID,
					OrganizerIDs: []uuid.UUID{},
					Status:       domain.EventScheduled,
				}
				event.PrepareForStorage()
				if err := repos.events.Create(ctx, q, event); err != nil {
					return stats, fmt.Errorf("failed to create event %s: %w", se.Title, err)
				}
				stats.Events++
			}
		}

		for _, se := range su.Endpoints {
			endpoint := &domain.RtmpEndpoint{
				ID:        uuid.New(),
				Title:     se.Title,
				StreamKey: se.StreamKey,
				RtmpURL:   se.RtmpURL,
				UserID:    user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if endpoint.StreamKey == "" {
				endpoint.StreamKey = "sk-" + uuid.NewString()
			}
			if err := repos.endpoints.Create(ctx, q, endpoint); err != nil {
				return stats, fmt.Errorf("failed to create endpoint %s: %w", se.Title, err)
			}
			stats.Endpoints++
		}
	}

	return stats, nil
}

func printPlan(seed SeedFile) {
	for _, u := range seed.Users {
		fmt.Printf("user %s (%s)\n", u.Username, u.KeycloakID)
		for _, c := range u.Channels {
			fmt.Printf("  channel %s: %d events\n", c.Name, len(c.Events))
		}
		for _, e := range u.Endpoints {
			fmt.Printf("  endpoint %s -> %s\n", e.Title, e.RtmpURL)
		}
	}
}

func demoSeed() SeedFile {
	return SeedFile{Users: []SeedUser{
		{
			KeycloakID: "kc-admin",
			Username:   "admin",
			Email:      "admin@spoutbreeze.local",
			FirstName:  "Admin",
			LastName:   "User",
			Roles:      domain.RoleAdmin,
		},
		{
			KeycloakID: "kc-streamer",
			Username:   "streamer",
			Email:      "streamer@spoutbreeze.local",
			FirstName:  "Sam",
			LastName:   "Streamer",
			Roles:      domain.RoleStreamer + "," + domain.RoleModerator,
			Channels: []SeedChannel{
				{
					Name: "weekly-talks",
					Events: []SeedEvent{
						{Title: "Go Meetup", Description: "Monthly community talks", StartsInHours: 24},
						{Title: "Release Review", Description: "Walkthrough of the latest release", StartsInHours: 72, Occurs: "weekly"},
					},
				},
				{
					Name:   "office-hours",
					Events: []SeedEvent{{Title: "Open Q and A", StartsInHours: 2}},
				},
			},
			Endpoints: []SeedEndpoint{
				{Title: "YouTube", RtmpURL: "rtmp://a.rtmp.youtube.com/live2"},
				{Title: "Twitch", RtmpURL: "rtmp://live.twitch.tv/app"},
			},
		},
		{
			KeycloakID: "kc-viewer",
			Username:   "viewer",
			Email:      "viewer@spoutbreeze.local",
			FirstName:  "Vic",
			LastName:   "Viewer",
		},
	}}
}
