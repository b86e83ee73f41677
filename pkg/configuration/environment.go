package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/RobinJosephDev/AdminUILinux/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

// LoadEnv loads the env files that actually exist and reports how many did.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	if len(existing) == 0 {
		return 0, nil
	}

	return len(existing), godotenv.Load(existing...)
}

type APIOptions struct {
	// BaseURL is the only host selector; all resource paths hang off it.
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:3000/api"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

func (a *APIOptions) Validate() error {
	if a.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", a.Timeout)
	}
	return nil
}

type UploadOptions struct {
	Path    string `env:"UPLOAD_PATH" envDefault:"/upload"`
	MaxSize int64  `env:"UPLOAD_MAX_SIZE" envDefault:"10485760"`
}

func (u *UploadOptions) Validate() error {
	if u.MaxSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_SIZE must be positive, got %d", u.MaxSize)
	}
	return nil
}

type TableOptions struct {
	RowsPerPage int `env:"ROWS_PER_PAGE" envDefault:"10"`
}

func (t *TableOptions) Validate() error {
	if t.RowsPerPage < 1 {
		return fmt.Errorf("ROWS_PER_PAGE must be at least 1, got %d", t.RowsPerPage)
	}
	return nil
}

type Configuration struct {
	API     APIOptions
	Uploads UploadOptions
	Table   TableOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	Locale           string `env:"LOCALE" envDefault:"en"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath          string `env:"LOG_PATH" envDefault:""`

	logger *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api configuration error: %w", err)
	}
	if err := c.Uploads.Validate(); err != nil {
		return fmt.Errorf("upload configuration error: %w", err)
	}
	if err := c.Table.Validate(); err != nil {
		return fmt.Errorf("table configuration error: %w", err)
	}

	if c.LogPath != "" {
		logger, err := logging.FileLogger(c.LogPath, c.LogrusLogLevel())
		if err != nil {
			return err
		}
		c.logger = logger
	} else {
		c.logger = logging.ConsoleLogger(c.LogrusLogLevel())
	}
	return nil
}
