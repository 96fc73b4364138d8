// Package config contains utilities for loading configs
package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/matt-dz/foodgram/internal/password"
)

const (
	defaultConfigFilePath = "/data/foodgram.yaml"
	appSecretBytes        = 32
	appSecretFilePerms    = 0o600
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	StorageDisk  = "disk"
	StorageMinio = "minio"
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.ValidatePassword(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len([]byte(*a)) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing is a cross-field validator attached to a placeholder field. It
// passes when the listed sibling fields (tag parameter, comma or space
// separated) are either all zero or all non-zero. Nil pointers count as zero.
// A missing field name or a non-struct parent fails validation.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero, hasNonZero := false, false
	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}
		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
	return v
}

var incompleteSections = map[string]string{
	"Database": "Port, Host, Database, User, and Password",
	"Admin":    "Username, FirstName, LastName, Email, and Password",
	"Minio":    "Endpoint, AccessKey, SecretKey, and Bucket",
	"Garage":   "AdminHost and AdminToken",
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() != "allOrNothing" {
			continue
		}
		// "Config.Storage.Minio.Validate" -> "Minio"
		parts := strings.Split(e.Namespace(), ".")
		var section string
		//nolint:mnd
		if len(parts) >= 2 {
			section = parts[len(parts)-2]
		}
		fields, ok := incompleteSections[section]
		if !ok {
			fields = "all related fields"
		}
		return fmt.Errorf(
			"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
			section, fields)
	}

	return err
}

type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Server struct {
	Port uint16 `yaml:"port" validate:"required"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

type Disk struct {
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix"`
}

type Minio struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	// PublicURL is the base under which bucket objects are reachable by clients.
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint AccessKey SecretKey Bucket"`
}

// Garage holds the admin API credentials used to bootstrap a fresh Garage
// cluster layout before the bucket is created.
type Garage struct {
	AdminHost  string `yaml:"admin_host" validate:"omitempty,hostname_port"`
	AdminToken string `yaml:"admin_token"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=AdminHost AdminToken"`
}

type Storage struct {
	Backend string `yaml:"backend" validate:"oneof=disk minio"`
	Disk    Disk   `yaml:"disk"`
	Minio   Minio  `yaml:"minio"`
	Garage  Garage `yaml:"garage"`
}

type Admin struct {
	Username  string        `yaml:"username"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Email     string        `yaml:"email" validate:"omitempty,email"`
	Password  AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Username FirstName LastName Email Password"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,url"`
}

type Config struct {
	AppSecret  AppSecret `yaml:"app_secret"`
	Server     Server    `yaml:"server"`
	Admin      Admin     `yaml:"admin"`
	Storage    Storage   `yaml:"storage"`
	Database   Database  `yaml:"database"`
	CORS       CORS      `yaml:"cors"`
	HostOrigin string    `yaml:"host_origin" validate:"url"`
	Env        string    `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
}

func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func newAppSecret() (string, error) {
	token := make([]byte, appSecretBytes)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("creating app secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

// loadAppSecret fills AppSecret.Value from AppSecret.Path, generating and
// persisting a new secret when the file does not exist yet.
func loadAppSecret(config *Config) error {
	if config.AppSecret.Value != nil {
		return nil
	}

	var secret string
	info, err := os.Lstat(config.AppSecret.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		file, err := os.OpenFile(config.AppSecret.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
		if err != nil {
			return fmt.Errorf("creating secret file: %w", err)
		}
		defer func() { _ = file.Close() }()

		secret, err = newAppSecret()
		if err != nil {
			return fmt.Errorf("generating new app secret: %w", err)
		}
		if _, err := file.WriteString(secret); err != nil {
			return fmt.Errorf("writing secret file: %w", err)
		}
	case err != nil:
		return fmt.Errorf("checking secret path: %w", err)
	case info.IsDir():
		return fmt.Errorf("expected file, got directory at %q", config.AppSecret.Path)
	default:
		data, err := os.ReadFile(config.AppSecret.Path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		secret = strings.TrimSpace(string(data))
	}

	val := AppSecretValue(secret)
	if err := val.Validate(); err != nil {
		return fmt.Errorf("secret at %q: %w", config.AppSecret.Path, err)
	}
	config.AppSecret.Value = &val
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parsePort(key, def string) (uint16, error) {
	raw := loadWithDefault(key, def)
	if raw == "" {
		return 0, nil
	}
	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s (%q): %w", key, raw, err)
	}
	return uint16(port), nil
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        os.Getenv("ENV"),
		HostOrigin: os.Getenv("HOST_ORIGIN"),
		AppSecret: AppSecret{
			Path:    os.Getenv("APP_SECRET_PATH"),
			Version: os.Getenv("APP_SECRET_VERSION"),
		},
		Database: Database{
			Host:     os.Getenv("DATABASE_HOST"),
			Database: os.Getenv("DATABASE"),
			User:     os.Getenv("DATABASE_USER"),
			Password: os.Getenv("DATABASE_PASSWORD"),
		},
		Storage: Storage{
			Backend: os.Getenv("STORAGE_BACKEND"),
			Disk: Disk{
				Volume:    os.Getenv("STORAGE_VOLUME"),
				URLPrefix: os.Getenv("STORAGE_URL_PREFIX"),
			},
			Minio: Minio{
				Endpoint:  os.Getenv("MINIO_ENDPOINT"),
				AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
				SecretKey: os.Getenv("MINIO_SECRET_KEY"),
				Bucket:    os.Getenv("MINIO_BUCKET"),
				PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
			},
			Garage: Garage{
				AdminHost:  os.Getenv("GARAGE_ADMIN_HOST"),
				AdminToken: os.Getenv("GARAGE_ADMIN_TOKEN"),
			},
		},
		Admin: Admin{
			Username:  os.Getenv("ADMIN_USERNAME"),
			FirstName: os.Getenv("ADMIN_FIRST_NAME"),
			LastName:  os.Getenv("ADMIN_LAST_NAME"),
			Email:     os.Getenv("ADMIN_EMAIL"),
			Password:  AdminPassword(os.Getenv("ADMIN_PASSWORD")),
		},
		CORS: CORS{
			AllowedOrigins: splitFieldList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
	}

	if v := os.Getenv("APP_SECRET"); v != "" {
		val := AppSecretValue(v)
		conf.AppSecret.Value = &val
	}

	var err error
	if conf.Server.Port, err = parsePort("SERVER_PORT", ""); err != nil {
		return conf, err
	}
	if conf.Database.Port, err = parsePort("DATABASE_PORT", ""); err != nil {
		return conf, err
	}
	if raw := os.Getenv("MINIO_USE_SSL"); raw != "" {
		if conf.Storage.Minio.UseSSL, err = strconv.ParseBool(raw); err != nil {
			return conf, fmt.Errorf("invalid MINIO_USE_SSL (%q): %w", raw, err)
		}
	}

	return finalize(conf)
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return finalize(config)
}

func applyDefaults(c *Config) {
	if c.Env == "" {
		c.Env = EnvDev
	}
	if c.HostOrigin == "" {
		c.HostOrigin = "http://localhost:8080"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.AppSecret.Path == "" {
		c.AppSecret.Path = "/data/secret"
	}
	if c.AppSecret.Version == "" {
		c.AppSecret.Version = "1"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageDisk
	}
	if c.Storage.Disk.Volume == "" {
		c.Storage.Disk.Volume = "/data/media"
	}
	if c.Storage.Disk.URLPrefix == "" {
		c.Storage.Disk.URLPrefix = "/media"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{c.HostOrigin}
	}
}

func finalize(c Config) (Config, error) {
	applyDefaults(&c)

	if err := newValidator().Struct(c); err != nil {
		return Config{}, formatValidationError(err)
	}
	if c.Storage.Backend == StorageMinio && c.Storage.Minio.Endpoint == "" {
		return Config{}, errors.New("storage backend minio requires the minio section")
	}

	if err := loadAppSecret(&c); err != nil {
		return Config{}, fmt.Errorf("loading app secret: %w", err)
	}

	return c, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the YAML file at $CONFIG_PATH when present and falls back
// to environment variables otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault("CONFIG_PATH", defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
