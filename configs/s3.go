package configs

type S3Config struct {
	Region     string `yaml:"region"`
	Endpoint   string `yaml:"endpoint"`
	BucketName string `yaml:"bucket_name"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	// PresignTTLSeconds is how long generated media links stay valid.
	// Zero falls back to 300 (5 minutes).
	PresignTTLSeconds int `yaml:"presign_ttl_seconds"`
}
