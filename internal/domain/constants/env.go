package constants

// Deployment environments selectable through env.env.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// IsDevelopment reports whether the environment runs without cloud credentials.
func IsDevelopment(env string) bool {
	return env == EnvLocal || env == EnvDevelop
}
