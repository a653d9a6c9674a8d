// Command client is a small command-line caller of a running go-social-api
// server, built on internal/adapter.
//
//	client -a localhost:3000 version
//	client -a localhost:3000 hello world
//	client -a localhost:3000 -email al@example.com -password secret following
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-social-api/internal/adapter"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

// defaultServerAddress points at the server's default listen address (:3000).
const defaultServerAddress = "localhost:3000"

func main() {
	address := flag.String("a", defaultServerAddress, "go-social-api server address")
	timeout := flag.Duration("t", 10*time.Second, "request timeout")
	email := flag.String("email", "", "account email for authenticated commands")
	password := flag.String("password", "", "account password for authenticated commands")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	log := logger.NewLogger("go-social-client", *logLevel)

	client, err := adapter.NewHTTPAPIClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err = run(ctx, client, flag.Args(), models.LoginRequest{Email: *email, Password: *password}); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(ctx context.Context, client adapter.APIClient, args []string, credentials models.LoginRequest) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given, use one of: version, hello, following, followers")
	}

	switch args[0] {
	case "version":
		version, err := client.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
	case "hello":
		param := ""
		if len(args) > 1 {
			param = args[1]
		}
		greeting, err := client.Greeting(ctx, param)
		if err != nil {
			return err
		}
		fmt.Println(greeting)
	case "following", "followers":
		if _, err := client.Login(ctx, credentials); err != nil {
			return fmt.Errorf("login: %w", err)
		}

		list := client.Following
		if args[0] == "followers" {
			list = client.Followers
		}
		entries, err := list(ctx)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(entries)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}
