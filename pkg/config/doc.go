// Package config holds the environment-driven configuration for simple-org.
//
// The top-level Config struct is loaded with cleanenv:
//
//	var cfg config.Config
//	if err := cleanenv.ReadEnv(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each section converts itself into the shape its consumer wants, for
// example Database.ToDbConfig for the pgx pool or Email.ToSMTPConfig
// for the mail notifier.
package config
