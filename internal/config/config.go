// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервера
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	TCPServer               `yaml:"tcp_server"`
	AdminServer             `yaml:"admin_server"`
	RedisConnection         `yaml:"redis_connection"`
	RabbitMQ                `yaml:"rabbitmq"`
	SMTP                    `yaml:"smtp"`
	PlantAPI                `yaml:"plant_api"`
}

// TCPServer структура для настройки слушателя клиентских сообщений
type TCPServer struct {
	AddressTCP  string        `yaml:"address_tcp" env-default:":2555"`
	ReadTimeout time.Duration `yaml:"read_timeout" env-default:"30s"`
}

// AdminServer структура для настройки служебного HTTP-сервера (health, metrics)
type AdminServer struct {
	AddressAdmin string        `yaml:"address_admin" env-default:":8081"`
	TimeoutHTTP  time.Duration `yaml:"timeout_http" env-default:"5s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"address_redis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeout_redis"`
}

// RabbitMQ структура для настройки подключения к брокеру уведомлений
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"rabbitmq_url"`
	RabbitMQMaxRetries int           `yaml:"rabbitmq_max_retries" env-default:"5"`
	RabbitMQRetryDelay time.Duration `yaml:"rabbitmq_retry_delay" env-default:"3s"`
}

// SMTP структура для настройки почтового транспорта напоминаний
type SMTP struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     string `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
}

// PlantAPI структура для настройки клиента внешнего каталога растений
type PlantAPI struct {
	APIKey         string        `yaml:"api_key" env:"PLANT_API_KEY"`
	BaseURL        string        `yaml:"base_url" env-default:"https://perenual.com/api"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"10s"`
	RatePerSecond  float64       `yaml:"rate_per_second" env-default:"2"`
	RateBurst      int           `yaml:"rate_burst" env-default:"5"`
}

// MustLoad функция для загрузки конфига, путь берется из переменной окружения CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
