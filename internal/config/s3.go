package config

// S3Config содержит настройки S3-совместимого хранилища объектов.
type S3Config struct {
	Region    string `yaml:"region" env:"NOTEVAULT_S3_REGION" env-default:"us-east-1"`
	Bucket    string `yaml:"bucket" env:"NOTEVAULT_S3_BUCKET" env-default:"notevault-media"`
	AccessKey string `yaml:"access_key" env:"NOTEVAULT_S3_ACCESS_KEY" env-default:""`
	SecretKey string `yaml:"secret_key" env:"NOTEVAULT_S3_SECRET_KEY" env-default:""`
	Endpoint  string `yaml:"endpoint" env:"NOTEVAULT_S3_ENDPOINT" env-default:""`
	PublicURL string `yaml:"public_url" env:"NOTEVAULT_S3_PUBLIC_URL" env-default:""`
}
