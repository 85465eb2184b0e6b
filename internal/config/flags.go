// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-base-url proxy server base URL used by the client
//	-callback-address client OAuth callback listener [host]:[port]
//	-d SQLite database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-page-size links per review page
//	-retry-interval failed delete retry interval (e.g., "1m")
//	-consumer-key Pocket consumer key
//	-pocket-url Pocket API base URL
//	-public-url externally reachable server URL
//	-client-callback-url where the server redirects with the access token
//	-dry-run log deletes instead of sending them upstream
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, callbackAddress NetAddress
	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pageSize int
	var retryInterval time.Duration
	var consumerKey string
	var pocketURL string
	var publicURL string
	var clientCallbackURL string
	var dryRun bool

	fs := flag.NewFlagSet("pocket-triage", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&baseURL, "base-url", "", "Proxy server base URL")
	fs.Var(&callbackAddress, "callback-address", "OAuth callback address host:port")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&pageSize, "page-size", 0, "Links per review page")
	fs.DurationVar(&retryInterval, "retry-interval", 0, "Failed delete retry interval (e.g., 1m)")
	fs.StringVar(&consumerKey, "consumer-key", "", "Pocket consumer key")
	fs.StringVar(&pocketURL, "pocket-url", "", "Pocket API base URL")
	fs.StringVar(&publicURL, "public-url", "", "Externally reachable server URL")
	fs.StringVar(&clientCallbackURL, "client-callback-url", "", "Client OAuth callback URL")
	fs.BoolVar(&dryRun, "dry-run", false, "Log deletes instead of sending them")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PageSize: pageSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			PublicURL:         publicURL,
			ClientCallbackURL: clientCallbackURL,
			DryRun:            dryRun,
		},
		Pocket: Pocket{
			ConsumerKey: consumerKey,
			BaseURL:     pocketURL,
		},
		Adapter: Adapter{
			HTTPAddress:    baseURL,
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			CallbackAddress: callbackAddress.String(),
		},
		Workers: Workers{
			RetryInterval: retryInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
