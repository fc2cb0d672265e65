package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	Data   Data   `yaml:"data"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Data struct {
	PostsPath string `yaml:"posts_path"`
	UsersPath string `yaml:"users_path"`
}

// Default — значения на случай отсутствия config.yaml.
func Default() *Config {
	return &Config{
		Server: Server{Addr: ":8080"},
		Data: Data{
			PostsPath: "data/posts.json",
			UsersPath: "data/users.json",
		},
	}
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found")
	}
}

// Load читает yaml-конфиг; поверх файла применяется переменная
// окружения SERVER_ADDR, если она задана.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, cfg)
	if err != nil {
		return nil, err
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}
