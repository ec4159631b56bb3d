// Package fixtures, YAML seed verisini veritabanına yükler.
//
// Tüm doküman tek bir transaction içinde uygulanır: bilinmeyen bir kullanıcı
// veya kategori referansı varsa hiçbir satır yazılmaz.
package fixtures

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/models"
	"github.com/akinalp/directory/pkg"
	"github.com/akinalp/directory/repository"
	"github.com/akinalp/directory/services"
)

// File, fixture dokümanının kök yapısı.
type File struct {
	Users      []User     `yaml:"users"`
	Categories []Category `yaml:"categories"`
	Servers    []Server   `yaml:"servers"`
}

// User, düz şifreli kullanıcı tanımı. Şifre yükleme sırasında hash'lenir.
type User struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	DisplayName string `yaml:"display_name"`
}

type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// Server, owner ve members kullanıcı adı, category kategori ismi ile referans verir.
type Server struct {
	Name        string    `yaml:"name"`
	Owner       string    `yaml:"owner"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
	Icon        string    `yaml:"icon"`
	Banner      string    `yaml:"banner"`
	Members     []string  `yaml:"members"`
	Channels    []Channel `yaml:"channels"`
}

type Channel struct {
	Name  string `yaml:"name"`
	Topic string `yaml:"topic"`
}

// Result, yüklenen kayıt sayıları.
type Result struct {
	Users      int
	Categories int
	Servers    int
	Members    int
	Channels   int
}

// Parse, YAML içeriğini File'a çevirir.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// Load, path'teki YAML dosyasını okur ve parse eder.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return Parse(data)
}

// Apply, fixture'ı tek transaction içinde veritabanına yazar.
func Apply(ctx context.Context, db *sql.DB, f *File, log zerolog.Logger) (*Result, error) {
	res := &Result{}

	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		return apply(ctx, tx, f, res)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("users", res.Users).
		Int("categories", res.Categories).
		Int("servers", res.Servers).
		Int("members", res.Members).
		Int("channels", res.Channels).
		Msg("fixtures applied")

	return res, nil
}

func apply(ctx context.Context, tx *sql.Tx, f *File, res *Result) error {
	users := repository.NewSQLiteUserRepo(tx)
	categories := repository.NewSQLiteCategoryRepo(tx)
	servers := repository.NewSQLiteServerRepo(tx)
	channels := repository.NewSQLiteChannelRepo(tx)

	userIDs := make(map[string]string, len(f.Users))
	for _, u := range f.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), services.BcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", u.Username, err)
		}

		user := &models.User{
			Username:     u.Username,
			DisplayName:  optional(u.DisplayName),
			PasswordHash: string(hash),
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		userIDs[u.Username] = user.ID
		res.Users++
	}

	categoryIDs := make(map[string]int64, len(f.Categories))
	for _, c := range f.Categories {
		cat := &models.Category{
			Name:        c.Name,
			Description: optional(c.Description),
			Icon:        optional(c.Icon),
		}
		if err := categories.Create(ctx, cat); err != nil {
			return err
		}
		categoryIDs[c.Name] = cat.ID
		res.Categories++
	}

	// Dokümanda tanımlanmayan ama DB'de zaten olan kullanıcı/kategoriler de kabul edilir.
	resolveUser := func(username string) (string, error) {
		if id, ok := userIDs[username]; ok {
			return id, nil
		}
		u, err := users.GetByUsername(ctx, username)
		if errors.Is(err, pkg.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown user %q", pkg.ErrBadRequest, username)
		}
		if err != nil {
			return "", fmt.Errorf("failed to resolve user %q: %w", username, err)
		}
		userIDs[username] = u.ID
		return u.ID, nil
	}
	resolveCategory := func(name string) (int64, error) {
		if id, ok := categoryIDs[name]; ok {
			return id, nil
		}
		c, err := categories.GetByName(ctx, name)
		if errors.Is(err, pkg.ErrNotFound) {
			return 0, fmt.Errorf("%w: unknown category %q", pkg.ErrBadRequest, name)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to resolve category %q: %w", name, err)
		}
		categoryIDs[name] = c.ID
		return c.ID, nil
	}

	for _, s := range f.Servers {
		ownerID, err := resolveUser(s.Owner)
		if err != nil {
			return fmt.Errorf("server %q: %w", s.Name, err)
		}
		categoryID, err := resolveCategory(s.Category)
		if err != nil {
			return fmt.Errorf("server %q: %w", s.Name, err)
		}

		server := &models.Server{
			Name:        s.Name,
			OwnerID:     ownerID,
			CategoryID:  categoryID,
			Description: optional(s.Description),
			Icon:        optional(s.Icon),
			Banner:      optional(s.Banner),
		}
		if err := servers.Create(ctx, server); err != nil {
			return err
		}
		res.Servers++

		for _, member := range s.Members {
			memberID, err := resolveUser(member)
			if err != nil {
				return fmt.Errorf("server %q: %w", s.Name, err)
			}
			if err := servers.AddMember(ctx, server.ID, memberID); err != nil {
				return err
			}
			res.Members++
		}

		for _, ch := range s.Channels {
			channel := &models.Channel{
				ServerID: server.ID,
				Name:     ch.Name,
				Topic:    optional(ch.Topic),
				OwnerID:  ownerID,
			}
			if err := channels.Create(ctx, channel); err != nil {
				return err
			}
			res.Channels++
		}
	}

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
