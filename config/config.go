package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Environment string          `yaml:"environment"`
	Server      ServerConfig    `yaml:"server"`
	Logging     LoggingConfig   `yaml:"logging"`
	Mongo       MongoConfig     `yaml:"mongo"`
	Content     ContentConfig   `yaml:"content"`
	Feeds       []NewsFeedEntry `yaml:"feeds"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// ContentConfig holds knobs for content processing.
type ContentConfig struct {
	// ReadingSpeed is the assumed words-per-minute used for read time
	// estimation. 0 or below falls back to the default of 500.
	ReadingSpeed int `yaml:"reading_speed"`

	// FieldCommentsPath is where admin annotations about ad hoc news
	// fields are persisted. Empty defaults to "field-comments.json".
	FieldCommentsPath string `yaml:"field_comments_path"`
}

// NewsFeedEntry is a single RSS source for the feed import command.
type NewsFeedEntry struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	RSSURL   string `yaml:"rss_url"`
	Category string `yaml:"category"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	// Secrets stay in the environment, not in config.yaml.
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	if name := os.Getenv("MONGODB_DB_NAME"); name != "" {
		c.Mongo.DBName = name
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// IsDevelopment reports whether error responses may include internal detail.
func IsDevelopment() bool {
	return GetConfig().Environment != "production"
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
