package configs

type Secrets struct {
	AdminPassword string `yaml:"admin_password"`
}
