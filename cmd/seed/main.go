package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/db"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/handler"
	"contactbook/internal/logging"
	"contactbook/internal/model"
	"contactbook/internal/repository"
	"contactbook/internal/service"
)

// SeedContactData represents one entry of the seed file.
type SeedContactData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

func main() {
	username := flag.String("user", os.Getenv("SEED_USERNAME"), "owner of the seeded contacts")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "owner password; used to register or to confirm an existing user")
	source := flag.String("source", os.Getenv("SEED_SOURCE"), "path or http(s) URL of a JSON array of contacts")
	flag.Parse()

	if *username == "" || *password == "" || *source == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBURI, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger.Info("fetching contacts", "source", *source)
	entries, err := loadContacts(*source)
	if err != nil {
		log.Fatalf("Failed to load contacts: %v", err)
	}

	credentials := service.NewCredentialStore(repository.NewUserRepository(gormDB), auth.NewPasswordHasher(cfg.BcryptCost))
	contacts := service.NewContactService(repository.NewContactRepository(gormDB))

	ctx := context.Background()
	owner, err := resolveOwner(ctx, credentials, *username, *password)
	if err != nil {
		log.Fatalf("Failed to resolve owner: %v", err)
	}

	seeded, skipped, err := seedContacts(ctx, contacts, owner, entries, logger)
	if err != nil {
		log.Fatalf("Failed to seed contacts: %v", err)
	}
	logger.Info("seed completed", "owner", owner.Username, "created", seeded, "skipped", skipped)
}

// loadContacts reads the seed array from a local file or an http(s) URL.
func loadContacts(source string) ([]SeedContactData, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch from %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%s returned status code: %d", source, resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	var entries []SeedContactData
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return entries, nil
}

// resolveOwner registers username, or reuses it when the password matches.
func resolveOwner(ctx context.Context, credentials service.CredentialStore, username, password string) (*model.User, error) {
	user, err := credentials.Register(ctx, username, password)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicateIdentity) {
		return nil, err
	}

	user, found, err := credentials.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !found || !credentials.VerifyPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrBadCredential
	}
	return user, nil
}

// seedContacts stores every entry under owner. Entries the API would reject
// are skipped.
func seedContacts(ctx context.Context, contacts service.ContactService, owner *model.User, entries []SeedContactData, logger *slog.Logger) (seeded int, skipped int, err error) {
	validate := validator.New()
	for i, item := range entries {
		if strings.TrimSpace(item.Name) == "" {
			logger.Warn("skipping contact without a name", "index", i)
			skipped++
			continue
		}
		req := handler.CreateContactRequest{
			Name:    item.Name,
			Email:   item.Email,
			Phone:   item.Phone,
			Address: item.Address,
			Image:   item.Image,
		}
		if err := validate.Struct(req); err != nil {
			logger.Warn("skipping invalid contact", "index", i, "name", item.Name, "error", err)
			skipped++
			continue
		}
		_, err := contacts.Create(ctx, owner.ID, service.ContactInput{
			Name:    item.Name,
			Email:   item.Email,
			Phone:   item.Phone,
			Address: item.Address,
			Image:   item.Image,
		})
		if err != nil {
			return seeded, skipped, fmt.Errorf("error creating contact %q: %w", item.Name, err)
		}
		seeded++
	}
	return seeded, skipped, nil
}
