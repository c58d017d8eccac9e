// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-defaults       default profiles file (YAML or JSON)
//	-defaults-url   default profiles URL, overrides -defaults
//	-profiles       explicit profiles file (YAML or JSON)
//	-a              HTTP API address in format [host]:[port]
//	-request-timeout   HTTP API request timeout (e.g. "30s")
//	-rate-limit     HTTP API requests per minute per client IP
//	-adapter-timeout   remote source request timeout (e.g. "15s")
//	-log-level      zerolog level name
//	-format         output format of printed profiles: json or yaml
//	-strict         exit non-zero when a profile fails validation
//	-c/-config      json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var defaultsPath, defaultsURL, profilesPath string
	var jsonConfigPath string
	var logLevel, format string
	var requestTimeout, adapterTimeout time.Duration
	var strict bool
	var rateLimit int

	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&defaultsPath, "defaults", "", "Default profiles file")
	fs.StringVar(&defaultsURL, "defaults-url", "", "Default profiles URL")
	fs.StringVar(&profilesPath, "profiles", "", "Explicit profiles file")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client IP")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Remote source timeout (e.g., 15s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&format, "format", "", "Output format (json, yaml)")
	fs.BoolVar(&strict, "strict", false, "Fail when a profile is invalid")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// only flags given on the command line count as set
	var requestTimeoutSet *time.Duration
	var rateLimitSet *int
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "request-timeout":
			requestTimeoutSet = &requestTimeout
		case "rate-limit":
			rateLimitSet = &rateLimit
		}
	})

	return &StructuredConfig{
		Profiles: Profiles{
			DefaultsPath: defaultsPath,
			DefaultsURL:  defaultsURL,
			ProfilesPath: profilesPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeoutSet,
			RateLimit:      rateLimitSet,
		},
		Adapter: Adapter{
			RequestTimeout: adapterTimeout,
		},
		Log: Log{
			Level: logLevel,
		},
		Output: Output{
			Format: format,
		},
		Strict:       strict,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (listen on all interfaces).
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
