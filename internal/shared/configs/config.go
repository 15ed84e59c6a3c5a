package configs

// Config holds all configuration for the application.
type Config struct {
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	Log           LogConfig           `mapstructure:"log" validate:"required"`
	FileStorage   FileStorageConfig   `mapstructure:"file_storage" validate:"required"`
	ObjectStorage ObjectStorageConfig `mapstructure:"object_storage" validate:"required"`
	ALB           ALBConfig           `mapstructure:"alb" validate:"required"`
	Download      DownloadConfig      `mapstructure:"download"`
	Progress      ProgressConfig      `mapstructure:"progress"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response, covers a whole report run)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ObjectStorageConfig selects where access logs are read from. Credentials left
// empty fall back to the provider's default chain.
type ObjectStorageConfig struct {
	Provider        string `mapstructure:"provider" validate:"required,oneof=s3 gcs"`
	Bucket          string `mapstructure:"bucket" validate:"required"`
	Region          string `mapstructure:"region"`
	EndpointURL     string `mapstructure:"endpoint_url" validate:"omitempty,url"`
	ForcePathStyle  bool   `mapstructure:"force_path_style"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required_with=AccessKeyID"`
	SessionToken    string `mapstructure:"session_token"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// ALBConfig describes the load balancers whose logs are analyzed.
type ALBConfig struct {
	AccountID  string `mapstructure:"account_id" validate:"required,numeric"`
	Region     string `mapstructure:"region" validate:"required,region"`
	ExternalLB string `mapstructure:"external_lb" validate:"required,lbname"`
	InternalLB string `mapstructure:"internal_lb" validate:"required,lbname"`
}

// DownloadConfig bounds the load put on object storage.
type DownloadConfig struct {
	Concurrency       int     `mapstructure:"concurrency" validate:"min=1,max=64"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"min=0"` // 0 disables pacing
}

// ProgressConfig holds progress reporting configuration.
type ProgressConfig struct {
	IntervalMs int `mapstructure:"interval_ms" validate:"min=0"`
}
