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

// ParseFlags parses configuration flags from args (without the program
// name) and returns the populated config together with the positional
// arguments that follow the flags.
//
// Flags:
//
//	-base-url backend base URL
//	-timeout request timeout (e.g. "50s")
//	-content-type default request content type
//	-session-file session file path
//	-a dev server address in format [host]:[port]
//	-static-dir built single-page app directory
//	-proxy-prefix path prefix proxied to the backend
//	-proxy-target backend origin for proxied requests
//	-preserve-host keep the client Host header on proxied requests
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("danmu", flag.ContinueOnError)

	var devServerAddress NetAddress
	var baseURL, contentType, sessionFile string
	var staticDir, proxyPrefix, proxyTarget string
	var preserveHost bool
	var logLevel string
	var jsonConfigPath string
	var timeout time.Duration

	fs.StringVar(&baseURL, "base-url", "", "Backend base URL")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 50s, 1m)")
	fs.StringVar(&contentType, "content-type", "", "Default request content type")
	fs.StringVar(&sessionFile, "session-file", "", "Session file path")
	fs.Var(&devServerAddress, "a", "Dev server net address host:port")
	fs.StringVar(&staticDir, "static-dir", "", "Built single-page app directory")
	fs.StringVar(&proxyPrefix, "proxy-prefix", "", "Path prefix proxied to the backend")
	fs.StringVar(&proxyTarget, "proxy-target", "", "Backend origin for proxied requests")
	fs.BoolVar(&preserveHost, "preserve-host", false, "Keep the client Host header on proxied requests")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		API: API{
			BaseURL:     baseURL,
			Timeout:     timeout,
			ContentType: contentType,
		},
		Session: Session{
			FilePath: sessionFile,
		},
		DevServer: DevServer{
			Address:      devServerAddress.String(),
			StaticDir:    staticDir,
			ProxyPrefix:  proxyPrefix,
			ProxyTarget:  proxyTarget,
			PreserveHost: preserveHost,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
