package config

import (
	"time"
)

type DB struct {
	Url        string `envconfig:"URL" default:"sqlite:creuset.db"`
	Migrations bool   `envconfig:"MIGRATIONS" default:"false"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[creuset]"`
}

type Server struct {
	Scheme     string `envconfig:"SCHEME" default:"http"`
	Host       string `envconfig:"HOST" default:"localhost"`
	Port       int    `envconfig:"PORT" default:"3000"`
	BodyLimit  int    `envconfig:"BODY_LIMIT" default:"10485760"`
	CorsOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
}

type LocalStorage struct {
	Path string `envconfig:"PATH" default:"./uploads"`
}

type S3Storage struct {
	Endpoint     string        `envconfig:"ENDPOINT"`
	Region       string        `envconfig:"REGION" default:"us-east-1"`
	AccessKey    string        `envconfig:"ACCESS_KEY"`
	SecretKey    string        `envconfig:"SECRET_KEY"`
	Bucket       string        `envconfig:"BUCKET" default:"le-creuset"`
	UsePathStyle bool          `envconfig:"USE_PATH_STYLE" default:"true"`
	PresignTTL   time.Duration `envconfig:"PRESIGN_TTL" default:"1h"`
}

type Storage struct {
	Driver string        `envconfig:"DRIVER" default:"local"`
	Local  *LocalStorage `envconfig:"LOCAL"`
	S3     *S3Storage    `envconfig:"S3"`
}

type Mail struct {
	ResendApiKey string `envconfig:"RESEND_API_KEY"`
	From         string `envconfig:"FROM" default:"Le Creuset <no-reply@le-creuset.local>"`
	AdminEmail   string `envconfig:"ADMIN_EMAIL" default:"admin@le-creuset.local"`
	AppURL       string `envconfig:"APP_URL" default:"http://localhost:5173"`
}

type Seed struct {
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Administrateur"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Storage   *Storage   `envconfig:"STORAGE"`
	Mail      *Mail      `envconfig:"MAIL"`
	Seed      *Seed      `envconfig:"SEED"`
}
