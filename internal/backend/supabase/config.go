package supabase

// Config contains Supabase backend configuration. The anon key is sent both
// as the apikey header and as the bearer token, as PostgREST expects.
type Config struct {
	URL     string `env:"SUPABASE_URL"`
	AnonKey string `env:"SUPABASE_ANON_KEY"`
	Timeout int    `env:"SUPABASE_TIMEOUT" envDefault:"30"`
}
